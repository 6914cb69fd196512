// Package notify renders and delivers report-ready notifications.
package notify

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"FadaMonitor/internal/domain"
	"FadaMonitor/internal/infrastructure/email"
	"FadaMonitor/internal/ports"
)

// Mailer is the outbound mail dependency; nil or unconfigured mailers make
// email a logged skip rather than an error.
type Mailer interface {
	Configured() bool
	Send(msg email.Message) error
}

// ReportNotifier always writes a console record and attempts a best-effort
// email with the artifact attached. Email failure never propagates: the
// console record and the downloaded artifact already preserve the
// information.
type ReportNotifier struct {
	out       io.Writer
	mailer    Mailer
	recipient string
	logger    *slog.Logger
}

var _ ports.Notifier = (*ReportNotifier)(nil)

// NewReportNotifier wires the console writer and optional mail channel.
func NewReportNotifier(out io.Writer, mailer Mailer, recipient string, logger *slog.Logger) *ReportNotifier {
	return &ReportNotifier{out: out, mailer: mailer, recipient: recipient, logger: logger}
}

// Notify delivers the notification for one processed report.
func (n *ReportNotifier) Notify(ctx context.Context, report domain.Report, summary, artifactPath string) error {
	n.printConsole(report, summary, artifactPath)

	if n.mailer == nil || !n.mailer.Configured() {
		if n.logger != nil {
			n.logger.Info("email not configured, skipping delivery", "report", report.Title)
		}
		return nil
	}
	if n.recipient == "" {
		if n.logger != nil {
			n.logger.Info("no notification recipient configured, skipping delivery", "report", report.Title)
		}
		return nil
	}

	msg := email.Message{
		To:             n.recipient,
		Subject:        "New FADA Report: " + report.Title,
		Body:           buildBody(report, summary, artifactPath),
		AttachmentPath: artifactPath,
	}
	if err := n.mailer.Send(msg); err != nil {
		if n.logger != nil {
			n.logger.Error("email delivery failed", "report", report.Title, "error", err)
		}
	}
	return nil
}

func (n *ReportNotifier) printConsole(report domain.Report, summary, artifactPath string) {
	rule := strings.Repeat("=", 80)
	fmt.Fprintf(n.out, "\n%s\n", rule)
	fmt.Fprintf(n.out, "NEW REPORT PROCESSED: %s\n", report.Title)
	fmt.Fprintf(n.out, "%s\n", rule)
	fmt.Fprintf(n.out, "\nReport saved to: %s\n", artifactPath)
	fmt.Fprintf(n.out, "\nSUMMARY:\n%s\n", summary)
	fmt.Fprintf(n.out, "\n%s\n", rule)
}

func buildBody(report domain.Report, summary, artifactPath string) string {
	rule := strings.Repeat("=", 50)
	return fmt.Sprintf(`New FADA Vehicle Retail Data Report Available
%s

Report: %s
Downloaded to: %s

SUMMARY:
%s

%s
This is an automated notification from FADA Monitor.
`, rule, report.Title, artifactPath, summary, rule)
}
