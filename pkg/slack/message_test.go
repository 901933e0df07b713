package slack

import (
	"strings"
	"testing"

	goslack "github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildReviewRequestedMessage(t *testing.T) {
	blocks := BuildReviewRequestedMessage(ReviewRequestedInput{
		TicketID:         "tkt-1",
		BasketID:         "bsk-1",
		AgentKind:        "research",
		OutputCount:      3,
		CheckpointReason: "low_confidence_outputs",
	}, "https://foundry.example.com")

	require.Len(t, blocks, 2)

	section, ok := blocks[0].(*goslack.SectionBlock)
	require.True(t, ok)
	assert.Contains(t, section.Text.Text, ":mag:")
	assert.Contains(t, section.Text.Text, "Review needed")
	assert.Contains(t, section.Text.Text, "Research agent")
	assert.Contains(t, section.Text.Text, "3 outputs")
	assert.Contains(t, section.Text.Text, "low_confidence_outputs")
	assert.Contains(t, section.Text.Text, "ticket tkt-1")

	action, ok := blocks[1].(*goslack.ActionBlock)
	require.True(t, ok)
	require.Len(t, action.Elements.ElementSet, 1)
	btn, ok := action.Elements.ElementSet[0].(*goslack.ButtonBlockElement)
	require.True(t, ok)
	assert.Equal(t, "Open Review Queue", btn.Text.Text)
	assert.Equal(t, "https://foundry.example.com/baskets/bsk-1/supervision", btn.URL)
}

func TestBuildReviewRequestedMessage_SingularOutput(t *testing.T) {
	blocks := BuildReviewRequestedMessage(ReviewRequestedInput{
		TicketID:    "tkt-2",
		BasketID:    "bsk-1",
		AgentKind:   "content",
		OutputCount: 1,
	}, "https://dash.example.com")

	section := blocks[0].(*goslack.SectionBlock)
	assert.Contains(t, section.Text.Text, "1 output awaiting")
	assert.NotContains(t, section.Text.Text, "Reason")
}

func TestBuildTicketFailedMessage(t *testing.T) {
	blocks := BuildTicketFailedMessage(TicketFailedInput{
		TicketID:     "tkt-3",
		BasketID:     "bsk-1",
		AgentKind:    "reporting",
		ErrorKind:    "substrate_unavailable",
		ErrorMessage: "circuit open",
	}, "https://dash.example.com")

	require.Len(t, blocks, 2)

	section := blocks[0].(*goslack.SectionBlock)
	assert.Contains(t, section.Text.Text, ":x:")
	assert.Contains(t, section.Text.Text, "Work ticket failed")
	assert.Contains(t, section.Text.Text, "Reporting agent")
	assert.Contains(t, section.Text.Text, "substrate_unavailable")
	assert.Contains(t, section.Text.Text, "circuit open")

	action := blocks[1].(*goslack.ActionBlock)
	btn := action.Elements.ElementSet[0].(*goslack.ButtonBlockElement)
	assert.Equal(t, "View Details", btn.Text.Text)
	assert.Equal(t, "https://dash.example.com/tickets/tkt-3", btn.URL)
}

func TestBuildTicketFailedMessage_TruncatesLongError(t *testing.T) {
	long := strings.Repeat("x", maxBlockTextLength+500)
	blocks := BuildTicketFailedMessage(TicketFailedInput{
		TicketID:     "tkt-4",
		AgentKind:    "research",
		ErrorKind:    "internal",
		ErrorMessage: long,
	}, "https://dash.example.com")

	section := blocks[0].(*goslack.SectionBlock)
	assert.Contains(t, section.Text.Text, "truncated")
	assert.Less(t, len(section.Text.Text), len(long))
}

func TestBuildVerdictMessage(t *testing.T) {
	t.Run("approved with promotion", func(t *testing.T) {
		blocks := BuildVerdictMessage(VerdictInput{
			TicketID:   "tkt-5",
			OutputID:   "out-1",
			Verdict:    "approved",
			Reviewer:   "user-9",
			Promoted:   true,
			ProposalID: "prop-7",
		})

		require.Len(t, blocks, 1)
		section := blocks[0].(*goslack.SectionBlock)
		assert.Contains(t, section.Text.Text, ":white_check_mark:")
		assert.Contains(t, section.Text.Text, "Approved")
		assert.Contains(t, section.Text.Text, "user-9")
		assert.Contains(t, section.Text.Text, "prop-7")
	})

	t.Run("rejected", func(t *testing.T) {
		blocks := BuildVerdictMessage(VerdictInput{
			Verdict:  "rejected",
			Reviewer: "user-9",
		})

		section := blocks[0].(*goslack.SectionBlock)
		assert.Contains(t, section.Text.Text, ":x:")
		assert.Contains(t, section.Text.Text, "Rejected")
		assert.NotContains(t, section.Text.Text, "proposal")
	})

	t.Run("unknown verdict falls back", func(t *testing.T) {
		blocks := BuildVerdictMessage(VerdictInput{
			Verdict:  "escalated",
			Reviewer: "user-9",
		})

		section := blocks[0].(*goslack.SectionBlock)
		assert.Contains(t, section.Text.Text, ":question:")
		assert.Contains(t, section.Text.Text, "escalated")
	})
}
