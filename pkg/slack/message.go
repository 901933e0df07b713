package slack

import (
	"fmt"

	goslack "github.com/slack-go/slack"
)

const maxBlockTextLength = 2900

var verdictEmoji = map[string]string{
	"approved":           ":white_check_mark:",
	"rejected":           ":x:",
	"revision_requested": ":pencil2:",
}

var verdictLabel = map[string]string{
	"approved":           "Approved",
	"rejected":           "Rejected",
	"revision_requested": "Revision Requested",
}

var agentKindLabel = map[string]string{
	"research":         "Research agent",
	"content":          "Content agent",
	"reporting":        "Reporting agent",
	"thinking_partner": "Thinking partner",
}

func reviewQueueURL(basketID, dashboardURL string) string {
	return fmt.Sprintf("%s/baskets/%s/supervision", dashboardURL, basketID)
}

func ticketURL(ticketID, dashboardURL string) string {
	return fmt.Sprintf("%s/tickets/%s", dashboardURL, ticketID)
}

// BuildReviewRequestedMessage creates Block Kit blocks for a checkpoint
// notification. The fingerprint line lets verdict replies find this
// message for threading.
func BuildReviewRequestedMessage(in ReviewRequestedInput, dashboardURL string) []goslack.Block {
	kind := agentKindLabel[in.AgentKind]
	if kind == "" {
		kind = in.AgentKind
	}

	noun := "outputs"
	if in.OutputCount == 1 {
		noun = "output"
	}
	text := fmt.Sprintf(":mag: *Review needed* — %s finished with %d %s awaiting supervision.",
		kind, in.OutputCount, noun)
	if in.CheckpointReason != "" {
		text += fmt.Sprintf("\n*Reason:* %s", truncateForSlack(in.CheckpointReason))
	}
	text += fmt.Sprintf("\n_%s_", TicketFingerprint(in.TicketID))

	blocks := []goslack.Block{
		goslack.NewSectionBlock(
			goslack.NewTextBlockObject(goslack.MarkdownType, text, false, false),
			nil, nil,
		),
	}

	btn := goslack.NewButtonBlockElement("", "", goslack.NewTextBlockObject(goslack.PlainTextType, "Open Review Queue", false, false))
	btn.URL = reviewQueueURL(in.BasketID, dashboardURL)
	blocks = append(blocks, goslack.NewActionBlock("", btn))

	return blocks
}

// BuildTicketFailedMessage creates Block Kit blocks for a terminal failure
// notification.
func BuildTicketFailedMessage(in TicketFailedInput, dashboardURL string) []goslack.Block {
	kind := agentKindLabel[in.AgentKind]
	if kind == "" {
		kind = in.AgentKind
	}

	text := fmt.Sprintf(":x: *Work ticket failed* — %s (%s).", kind, in.ErrorKind)
	if in.ErrorMessage != "" {
		text += fmt.Sprintf("\n\n*Error:*\n%s", truncateForSlack(in.ErrorMessage))
	}
	text += fmt.Sprintf("\n_%s_", TicketFingerprint(in.TicketID))

	blocks := []goslack.Block{
		goslack.NewSectionBlock(
			goslack.NewTextBlockObject(goslack.MarkdownType, text, false, false),
			nil, nil,
		),
	}

	btn := goslack.NewButtonBlockElement("", "", goslack.NewTextBlockObject(goslack.PlainTextType, "View Details", false, false))
	btn.URL = ticketURL(in.TicketID, dashboardURL)
	blocks = append(blocks, goslack.NewActionBlock("", btn))

	return blocks
}

// BuildVerdictMessage creates a single-section threaded reply for a
// supervision verdict.
func BuildVerdictMessage(in VerdictInput) []goslack.Block {
	emoji := verdictEmoji[in.Verdict]
	if emoji == "" {
		emoji = ":question:"
	}
	label := verdictLabel[in.Verdict]
	if label == "" {
		label = in.Verdict
	}

	text := fmt.Sprintf("%s *%s* by %s", emoji, label, in.Reviewer)
	if in.Promoted {
		text += fmt.Sprintf("\nPromoted to knowledge proposal `%s`", in.ProposalID)
	}

	return []goslack.Block{
		goslack.NewSectionBlock(
			goslack.NewTextBlockObject(goslack.MarkdownType, text, false, false),
			nil, nil,
		),
	}
}

func truncateForSlack(text string) string {
	if len(text) <= maxBlockTextLength {
		return text
	}
	return text[:maxBlockTextLength] + "\n\n_... (truncated — see the review queue for the full text)_"
}
