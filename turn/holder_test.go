package turn

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"turnroom/projection"
)

func newTestHolder() *SessionHolder {
	return NewSessionHolder(slog.Default(), projection.NewNotifier())
}

func TestSessionHolder_ReplaceWholesale(t *testing.T) {
	req := require.New(t)
	holder := newTestHolder()
	req.Nil(holder.Current())

	holder.Replace(activeSession("alice", nil))
	req.NotNil(holder.Current())
	req.Equal("alice", holder.Current().CurrentTurnUserID)

	// An inactive record clears the session entirely.
	inactive := activeSession("alice", nil)
	inactive.IsActive = false
	holder.Replace(inactive)
	req.Nil(holder.Current())

	holder.Replace(activeSession("bob", nil))
	holder.Replace(nil)
	req.Nil(holder.Current())
}

func TestSessionHolder_CurrentReturnsCopy(t *testing.T) {
	holder := newTestHolder()
	holder.Replace(activeSession("alice", nil))

	copied := holder.Current()
	copied.CurrentTurnUserID = "mallory"
	require.Equal(t, "alice", holder.Current().CurrentTurnUserID)
}

func TestSessionHolder_NudgeOncePerTurnInstance(t *testing.T) {
	req := require.New(t)
	holder := newTestHolder()
	req.False(holder.CanNudge(), "no session, no nudge")

	holder.Replace(activeSession("alice", nil))
	req.True(holder.CanNudge())

	holder.MarkNudged()
	req.False(holder.CanNudge(), "latched within the same turn instance")

	// Same instance arriving again (e.g. cooldown update) stays latched.
	holder.Replace(activeSession("alice", nil))
	req.False(holder.CanNudge())

	// A new turn instance resets eligibility.
	next := activeSession("bob", nil)
	next.TurnInstanceID = "turn-43"
	holder.Replace(next)
	req.True(holder.CanNudge())
}
