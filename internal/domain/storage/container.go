package storage

import (
	"context"
	"errors"
	"fmt"

	"masterneo/internal/domain/experiences"
	"masterneo/internal/domain/jobs"
	"masterneo/internal/domain/reviews"
	"masterneo/internal/domain/talents"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ReviewLedger writes reviews together with the owning talent's aggregates.
type ReviewLedger interface {
	CreateReview(ctx context.Context, rv *reviews.Review) (talents.Aggregates, error)
	DeleteReview(ctx context.Context, reviewID int64) (talents.Aggregates, error)
}

type Container struct {
	pool        *pgxpool.Pool // IMPORTANT: set the pool so WithTalentTx works
	Jobs        jobs.Store
	Talents     talents.Store
	Reviews     reviews.Store
	Experiences experiences.Store
	Ledger      ReviewLedger
}

func NewContainer(db *pgxpool.Pool) *Container {
	c := &Container{
		pool:        db,
		Jobs:        jobs.NewRepository(db),
		Talents:     talents.NewRepository(db),
		Reviews:     reviews.NewRepository(db),
		Experiences: experiences.NewRepository(db),
	}
	c.Ledger = &txLedger{c: c}
	return c
}

func (c *Container) Ping(ctx context.Context) error {
	if c.pool == nil {
		return errors.New("storage container pool is nil")
	}
	return c.pool.Ping(ctx)
}

// TalentTx is a tx-scoped set of repos for writes spanning a talent and its reviews.
type TalentTx struct {
	Talents talents.Store
	Reviews reviews.Store
}

// WithTalentTx runs fn atomically.
func (c *Container) WithTalentTx(ctx context.Context, fn func(s *TalentTx) error) error {
	if c.pool == nil {
		return fmt.Errorf("storage container pool is nil (did you forget to set pool in NewContainer?)")
	}

	tx, err := c.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}

	defer func() {
		_ = tx.Rollback(ctx) // safe even if already committed
	}()

	s := &TalentTx{
		Talents: talents.NewRepository(tx),
		Reviews: reviews.NewRepository(tx),
	}

	if err := fn(s); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

type txLedger struct {
	c *Container
}

// CreateReview locks the talent row, inserts the review and recomputes the
// aggregates from the reviews table before committing.
func (l *txLedger) CreateReview(ctx context.Context, rv *reviews.Review) (talents.Aggregates, error) {
	var agg talents.Aggregates
	err := l.c.WithTalentTx(ctx, func(s *TalentTx) error {
		if err := s.Talents.LockForUpdate(ctx, rv.TalentID); err != nil {
			return err
		}
		if err := s.Reviews.Create(ctx, rv); err != nil {
			return err
		}
		var err error
		agg, err = s.Talents.RecomputeAggregates(ctx, rv.TalentID)
		return err
	})
	return agg, err
}

func (l *txLedger) DeleteReview(ctx context.Context, reviewID int64) (talents.Aggregates, error) {
	var agg talents.Aggregates
	err := l.c.WithTalentTx(ctx, func(s *TalentTx) error {
		existing, err := s.Reviews.GetByID(ctx, reviewID)
		if err != nil {
			return err
		}
		if err := s.Talents.LockForUpdate(ctx, existing.TalentID); err != nil {
			return err
		}
		talentID, err := s.Reviews.Delete(ctx, reviewID)
		if err != nil {
			return err
		}
		agg, err = s.Talents.RecomputeAggregates(ctx, talentID)
		return err
	})
	return agg, err
}
