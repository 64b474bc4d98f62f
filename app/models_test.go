package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToReminderItem(t *testing.T) {
	r := Reminder{
		ID:          42,
		Title:       "Team meeting",
		Description: "Quarterly plans",
		Date:        "2025-11-25",
		Time:        "10:00",
		Frequency:   FrequencyWeekly,
		IsActive:    true,
		CreatedAt:   "2025-11-01T09:00:00Z",
	}

	item := toReminderItem(r)

	assert.Equal(t, ReminderItem{
		ID:          "42",
		Title:       "Team meeting",
		Description: "Quarterly plans",
		Date:        "2025-11-25",
		Time:        "10:00",
		Frequency:   FrequencyWeekly,
	}, item)

	id, err := item.remoteID()
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)
}

func TestToReminderItemAbsentDescription(t *testing.T) {
	item := toReminderItem(Reminder{ID: 1, Title: "Pay rent"})
	assert.Equal(t, "", item.Description)
}

func TestCreatePayloadRoundTrip(t *testing.T) {
	item := ReminderItem{
		ID:          "7",
		Title:       "Send report",
		Description: "Financials for November",
		Date:        "2025-11-30",
		Time:        "17:00",
		Frequency:   FrequencyMonthly,
	}

	payload := item.createPayload()
	assert.Equal(t, ReminderCreate{
		Title:       "Send report",
		Description: "Financials for November",
		Date:        "2025-11-30",
		Time:        "17:00",
		Frequency:   FrequencyMonthly,
	}, payload)
}

func TestUpdatePayloadCarriesAllEditableFields(t *testing.T) {
	item := ReminderItem{
		Title:     "Dentist",
		Date:      "2026-01-10",
		Time:      "09:30",
		Frequency: FrequencyOnce,
	}

	payload := item.updatePayload()
	require.NotNil(t, payload.Title)
	require.NotNil(t, payload.Description)
	require.NotNil(t, payload.Date)
	require.NotNil(t, payload.Time)
	require.NotNil(t, payload.Frequency)
	assert.Nil(t, payload.IsActive)
	assert.Equal(t, "Dentist", *payload.Title)
	assert.Equal(t, "", *payload.Description)
}

func TestValidFrequency(t *testing.T) {
	for _, f := range []string{FrequencyOnce, FrequencyDaily, FrequencyWeekly, FrequencyMonthly, FrequencyYearly} {
		assert.True(t, validFrequency(f), f)
	}
	assert.False(t, validFrequency("hourly"))
	assert.False(t, validFrequency(""))
}

func TestFrequencyLabelsCoverEnum(t *testing.T) {
	for f := range frequencyLabels {
		assert.Contains(t, frequencyIcons, f)
	}
}
