package db

// Migrations is the schema history, applied in Version order.
var Migrations = []Migration{
	{
		Version:     1,
		Description: "create jobs table",
		Up: `
			CREATE TABLE IF NOT EXISTS jobs (
				id              BIGSERIAL PRIMARY KEY,
				job_logo        TEXT,
				job_title       VARCHAR(200) NOT NULL,
				company_name    VARCHAR(200) NOT NULL,
				job_description TEXT NOT NULL,
				job_link        VARCHAR(200) NOT NULL,
				location        VARCHAR(200) NOT NULL,
				job_type        VARCHAR(100) NOT NULL DEFAULT '',
				is_remote       BOOLEAN NOT NULL DEFAULT FALSE,
				is_full_time    BOOLEAN NOT NULL DEFAULT FALSE,
				salary_min      BIGINT CHECK (salary_min >= 0),
				salary_max      BIGINT CHECK (salary_max >= 0),
				time_added      TIMESTAMPTZ NOT NULL DEFAULT now(),
				updated_at      TIMESTAMPTZ NOT NULL DEFAULT now(),
				CONSTRAINT jobs_salary_range_chk CHECK (
					salary_min IS NULL OR salary_max IS NULL OR salary_min <= salary_max
				)
			);
			CREATE INDEX IF NOT EXISTS idx_jobs_time_added ON jobs (time_added DESC, id DESC);
			CREATE INDEX IF NOT EXISTS idx_jobs_job_type ON jobs (LOWER(job_type));
			CREATE INDEX IF NOT EXISTS idx_jobs_is_remote ON jobs (is_remote);
		`,
		Down: `DROP TABLE IF EXISTS jobs;`,
	},
	{
		Version:     2,
		Description: "create talents table",
		Up: `
			CREATE TABLE IF NOT EXISTS talents (
				id               BIGSERIAL PRIMARY KEY,
				username         VARCHAR(200) NOT NULL,
				global_name      VARCHAR(200) NOT NULL DEFAULT '',
				avatar           TEXT,
				timezone         VARCHAR(64) NOT NULL DEFAULT 'UTC',
				language         VARCHAR(200) NOT NULL DEFAULT '',
				about_me         TEXT NOT NULL DEFAULT '',
				summary          TEXT NOT NULL DEFAULT '',
				skills           TEXT[] NOT NULL DEFAULT '{}',
				profile_visits   BIGINT NOT NULL DEFAULT 0 CHECK (profile_visits >= 0),
				reviews_count    INTEGER NOT NULL DEFAULT 0,
				average_rating   DOUBLE PRECISION,
				email            VARCHAR(200),
				discord_profile  VARCHAR(200),
				twitter_profile  VARCHAR(200),
				phone_number     VARCHAR(32),
				date_joined      TIMESTAMPTZ NOT NULL DEFAULT now(),
				updated_at       TIMESTAMPTZ NOT NULL DEFAULT now(),
				CONSTRAINT talents_skills_max_chk CHECK (cardinality(skills) <= 5)
			);
			CREATE UNIQUE INDEX IF NOT EXISTS idx_talents_username ON talents (LOWER(username));
			CREATE INDEX IF NOT EXISTS idx_talents_timezone ON talents (timezone);
			CREATE INDEX IF NOT EXISTS idx_talents_rating ON talents (average_rating DESC NULLS LAST, id DESC);
			CREATE INDEX IF NOT EXISTS idx_talents_skills ON talents USING GIN (skills);
		`,
		Down: `DROP TABLE IF EXISTS talents;`,
	},
	{
		Version:     3,
		Description: "create reviews and experiences tables",
		Up: `
			CREATE TABLE IF NOT EXISTS reviews (
				id                  BIGSERIAL PRIMARY KEY,
				talent_id           BIGINT NOT NULL REFERENCES talents(id) ON DELETE CASCADE,
				reviewer_name       VARCHAR(200) NOT NULL,
				reviewer_occupation VARCHAR(200) NOT NULL DEFAULT '',
				review              TEXT NOT NULL,
				rating              SMALLINT NOT NULL CHECK (rating BETWEEN 1 AND 5),
				created_at          TIMESTAMPTZ NOT NULL DEFAULT now()
			);
			CREATE INDEX IF NOT EXISTS idx_reviews_talent_id ON reviews (talent_id, created_at DESC);

			CREATE TABLE IF NOT EXISTS experiences (
				id                BIGSERIAL PRIMARY KEY,
				talent_id         BIGINT NOT NULL REFERENCES talents(id) ON DELETE CASCADE,
				project_logo      TEXT,
				company_name      VARCHAR(200) NOT NULL,
				role              VARCHAR(200) NOT NULL,
				description       TEXT NOT NULL DEFAULT '',
				start_date        DATE NOT NULL,
				end_date          DATE,
				currently_working BOOLEAN NOT NULL DEFAULT FALSE,
				verified          BOOLEAN NOT NULL DEFAULT FALSE,
				twitter_link      VARCHAR(200),
				discord_link      VARCHAR(200),
				created_at        TIMESTAMPTZ NOT NULL DEFAULT now(),
				updated_at        TIMESTAMPTZ NOT NULL DEFAULT now(),
				CONSTRAINT experiences_working_end_chk CHECK (NOT (currently_working AND end_date IS NOT NULL)),
				CONSTRAINT experiences_date_order_chk CHECK (end_date IS NULL OR end_date >= start_date)
			);
			CREATE INDEX IF NOT EXISTS idx_experiences_talent_id ON experiences (talent_id, start_date DESC);
		`,
		Down: `
			DROP TABLE IF EXISTS experiences;
			DROP TABLE IF EXISTS reviews;
		`,
	},
	{
		Version:     4,
		Description: "create talent profile visits table",
		Up: `
			CREATE TABLE IF NOT EXISTS talent_profile_visits (
				talent_id   BIGINT NOT NULL REFERENCES talents(id) ON DELETE CASCADE,
				visitor_key VARCHAR(128) NOT NULL,
				visited_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
				PRIMARY KEY (talent_id, visitor_key)
			);
		`,
		Down: `DROP TABLE IF EXISTS talent_profile_visits;`,
	},
}
