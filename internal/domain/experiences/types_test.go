package experiences

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMonth(t *testing.T) {
	m, err := ParseMonth("2023-07")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2023, time.July, 1, 0, 0, 0, 0, time.UTC), m.Time)

	m, err = ParseMonth("2023-07-19")
	require.NoError(t, err)
	assert.Equal(t, "2023-07", m.String())

	_, err = ParseMonth("July 2023")
	assert.Error(t, err)
	_, err = ParseMonth("2023-13")
	assert.Error(t, err)
}

func TestMonthDateJSON(t *testing.T) {
	var e struct {
		Start MonthDate  `json:"start"`
		End   *MonthDate `json:"end"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"start":"2021-02","end":null}`), &e))
	assert.Equal(t, "2021-02", e.Start.String())
	assert.Nil(t, e.End)

	out, err := json.Marshal(e)
	require.NoError(t, err)
	assert.JSONEq(t, `{"start":"2021-02","end":null}`, string(out))

	assert.Error(t, json.Unmarshal([]byte(`{"start":202102}`), &e))
}

func TestExperienceValidate(t *testing.T) {
	start := MonthOf(time.Date(2022, 3, 15, 0, 0, 0, 0, time.UTC))
	end := MonthOf(time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC))

	e := &Experience{StartDate: start, EndDate: &end, CurrentlyWorking: true}
	assert.ErrorIs(t, e.Validate(), ErrEndDateWhileWorking)

	e.CurrentlyWorking = false
	assert.NoError(t, e.Validate())

	before := MonthOf(time.Date(2021, 12, 1, 0, 0, 0, 0, time.UTC))
	e.EndDate = &before
	assert.ErrorIs(t, e.Validate(), ErrEndBeforeStart)

	same := start
	e.EndDate = &same
	assert.NoError(t, e.Validate(), "a single-month engagement is allowed")

	e.EndDate = nil
	e.CurrentlyWorking = true
	assert.NoError(t, e.Validate())
}
