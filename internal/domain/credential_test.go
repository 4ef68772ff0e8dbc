package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCredentialValidate(t *testing.T) {
	valid := &Credential{AccessToken: "tok", ClientID: "id", ClientSecret: "secret"}
	assert.NoError(t, valid.Validate())

	for _, c := range []*Credential{
		{ClientID: "id", ClientSecret: "secret"},
		{AccessToken: "tok", ClientSecret: "secret"},
		{AccessToken: "tok", ClientID: " ", ClientSecret: "secret"},
	} {
		err := c.Validate()
		assert.True(t, errors.Is(err, ErrConfiguration))
	}
}

func TestCredentialLastRefresh(t *testing.T) {
	_, err := (&Credential{}).LastRefresh()
	assert.ErrorIs(t, err, ErrNeverRefreshed)

	_, err = (&Credential{RefreshedAt: "ontem"}).LastRefresh()
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrNeverRefreshed)

	at, err := (&Credential{RefreshedAt: "2024-03-01 08:30:00"}).LastRefresh()
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 1, 8, 30, 0, 0, time.Local), at)
}

func TestCredentialRefreshed(t *testing.T) {
	old := &Credential{AccessToken: "old", ClientID: "id", ClientSecret: "secret", RefreshedAt: "2020-01-01 00:00:00"}
	now := time.Date(2024, 5, 2, 13, 4, 5, 0, time.Local)

	fresh := old.Refreshed("new", now)

	assert.Equal(t, "new", fresh.AccessToken)
	assert.Equal(t, "id", fresh.ClientID)
	assert.Equal(t, "secret", fresh.ClientSecret)
	assert.Equal(t, "2024-05-02 13:04:05", fresh.RefreshedAt)
	assert.Equal(t, "old", old.AccessToken)
}
