package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/celtic-scaffold/audit-api/internal/models"
	appErrors "github.com/celtic-scaffold/audit-api/pkg/errors"
)

func TestAttemptUnlockWithFactoryPIN(t *testing.T) {
	svc, _ := newAuditServiceForTest(t)
	require.False(t, svc.Unlocked())

	err := svc.AttemptUnlock("0000")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrInvalidPIN.Code, appErrors.FromError(err).Code)
	assert.False(t, svc.Unlocked())

	require.NoError(t, svc.AttemptUnlock("2468"))
	assert.True(t, svc.Unlocked())
}

func TestAttemptUnlockIsExactMatch(t *testing.T) {
	svc, _ := newAuditServiceForTest(t)

	// No trimming, no normalization of any kind.
	require.Error(t, svc.AttemptUnlock(" 2468"))
	require.Error(t, svc.AttemptUnlock("2468 "))
	require.Error(t, svc.AttemptUnlock("24 68"))
	require.Error(t, svc.AttemptUnlock(""))
	assert.False(t, svc.Unlocked())
}

func TestFailedUnlockDoesNotPersist(t *testing.T) {
	svc, gateway := newAuditServiceForTest(t)

	require.Error(t, svc.AttemptUnlock("9999"))
	assert.Equal(t, 0, gateway.saves)

	require.NoError(t, svc.AttemptUnlock("2468"))
	assert.Equal(t, 1, gateway.saves)
	require.NotNil(t, gateway.last)
	assert.True(t, gateway.last.Unlocked)
}

func TestSetUnlockCodeTakesEffectImmediately(t *testing.T) {
	svc, _ := newAuditServiceForTest(t)
	require.NoError(t, svc.AttemptUnlock("2468"))

	svc.SetUnlockCode("7531")

	// Changing the code never re-locks the current session.
	assert.True(t, svc.Unlocked())
	state := svc.State()
	assert.Equal(t, "7531", state.PIN)
}

func TestUnlockedStatePersistsThroughSnapshots(t *testing.T) {
	// The gate state travels with the snapshot: a restored session that
	// was unlocked stays unlocked.
	restored := models.DefaultState("2468")
	restored.Unlocked = true
	svc := NewAuditService(models.DefaultCatalog(), restored, &gatewayStub{}, nil, nil)
	assert.True(t, svc.Unlocked())
}

func TestRepeatUnlockDoesNotSaveAgain(t *testing.T) {
	svc, gateway := newAuditServiceForTest(t)
	require.NoError(t, svc.AttemptUnlock("2468"))
	require.NoError(t, svc.AttemptUnlock("2468"))
	assert.Equal(t, 1, gateway.saves)
}
