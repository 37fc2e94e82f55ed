// 📁 service/mailer.go
package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	goalmodel "quranku_backend/internals/features/quran/goals/model"
	goalService "quranku_backend/internals/features/quran/goals/service"
	hadithmodel "quranku_backend/internals/features/quran/hadiths/model"
	hadithService "quranku_backend/internals/features/quran/hadiths/service"

	"github.com/resend/resend-go/v2"
)

var (
	resendClient *resend.Client
	mailFrom     = "Quran Productivity <onboarding@resend.dev>"
)

// InitResend menyiapkan client Resend sekali di startup.
func InitResend(apiKey, from string) {
	if apiKey == "" {
		log.Println("❌ RESEND_API_KEY belum diset — pengiriman email akan gagal!")
	}
	if from != "" {
		mailFrom = from
	}
	resendClient = resend.NewClient(apiKey)
}

// Mailer memisahkan driver reminder dari transport email sungguhan.
type Mailer interface {
	SendGoalReminder(ctx context.Context, email string, name *string, result *goalService.AdherenceResult) bool
}

// ResendMailer mengirim email HTML lewat Resend API.
type ResendMailer struct {
	// Batas waktu panggilan transport; timeout dihitung gagal kirim.
	Timeout time.Duration
}

func NewResendMailer() *ResendMailer {
	return &ResendMailer{Timeout: 10 * time.Second}
}

func (m *ResendMailer) SendGoalReminder(ctx context.Context, email string, name *string, result *goalService.AdherenceResult) bool {
	if resendClient == nil {
		log.Println("[EMAIL ERROR] Resend client belum diinisialisasi")
		return false
	}
	if result == nil || !result.ShouldNotify {
		return false
	}

	var subject, html string
	switch result.GoalType {
	case goalmodel.GoalTypeDailyPage:
		subject, html = buildDailyPageEmail(name, result.Daily)
	case goalmodel.GoalTypeDeadlineQuran:
		subject, html = buildDeadlineEmail(name, result.Deadline)
	default:
		return false
	}

	timeout := m.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	sendCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	sent, err := resendClient.Emails.SendWithContext(sendCtx, &resend.SendEmailRequest{
		From:    mailFrom,
		To:      []string{email},
		Subject: subject,
		Html:    html,
	})
	if err != nil {
		log.Printf("[EMAIL ERROR] %v", err)
		return false
	}

	log.Printf("[EMAIL SENT] id=%s to=%s", sent.Id, email)
	return true
}

// ===== Template email =====

func displayName(name *string) string {
	if name != nil && strings.TrimSpace(*name) != "" {
		return *name
	}
	return "Dear friend"
}

func hadithBlock(h hadithmodel.Hadith) string {
	return fmt.Sprintf(`
      <div style="background:#fff;border-left:4px solid #667eea;padding:20px;margin:20px 0;border-radius:5px;">
        <div style="font-size:20px;direction:rtl;text-align:right;font-weight:bold;color:#2d3748;line-height:1.8;">%s</div>
        <div style="font-style:italic;color:#4a5568;margin:15px 0 10px;">"%s"</div>
        <div style="font-size:14px;color:#718096;text-align:right;">— %s</div>
      </div>`, h.Arabic, h.Translation, h.Source)
}

func emailShell(body string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
  <body style="font-family:'Segoe UI',Tahoma,Geneva,Verdana,sans-serif;line-height:1.6;color:#333;max-width:600px;margin:0 auto;padding:20px;">
    <div style="background:linear-gradient(135deg,#667eea 0%%,#764ba2 100%%);color:#fff;padding:30px 20px;border-radius:10px 10px 0 0;text-align:center;">
      <h1 style="margin:0;">Quran Productivity 🌙</h1>
    </div>
    <div style="background:#f8f9fa;padding:30px 20px;border-radius:0 0 10px 10px;">
      %s
      <div style="text-align:center;color:#718096;font-size:14px;margin-top:30px;">
        <p>With warm regards,<br><strong>Quran Productivity</strong></p>
        <p style="font-size:12px;color:#a0aec0;">You're receiving this because you enabled email notifications for your Quran reading goal.</p>
      </div>
    </div>
  </body>
</html>`, body)
}

func buildDailyPageEmail(name *string, d *goalService.DailyAdherence) (string, string) {
	hadith := hadithService.GetRandomHadithByTheme(hadithmodel.HadithThemeConsistency)

	missed := "today"
	if d != nil && d.MissedDays == 1 {
		missed = "for 1 day"
	} else if d != nil && d.MissedDays > 1 {
		missed = fmt.Sprintf("for %d days", d.MissedDays)
	}
	target := 1
	if d != nil && d.TargetPages > 0 {
		target = d.TargetPages
	}
	pagesWord := "pages"
	if target == 1 {
		pagesWord = "page"
	}

	body := fmt.Sprintf(`
      <p>Assalamu Alaikum %s,</p>
      <p>We noticed you haven't logged your Quran reading %s.
      Your goal was to read %d %s daily.</p>
      %s
      <p>Small, consistent steps are beloved to Allah. A few minutes today keeps your habit alive.</p>`,
		displayName(name), missed, target, pagesWord, hadithBlock(hadith))

	return "A Gentle Reminder About Your Quran Goal 🌙", emailShell(body)
}

func buildDeadlineEmail(name *string, d *goalService.DeadlineAdherence) (string, string) {
	hadith := hadithService.GetRandomHadithByTheme(hadithmodel.HadithThemeQuran)

	var sb strings.Builder
	fmt.Fprintf(&sb, `
      <p>Assalamu Alaikum %s,</p>
      <p>Your Quran completion deadline is approaching — <strong>%d days</strong> remaining.
      You've read <strong>%d pages</strong> so far; to finish on time, aim for
      <strong>%d pages per day</strong>.</p>`,
		displayName(name), d.DaysRemaining, d.CurrentProgress, d.RequiredPagesPerDay)

	if len(d.SurahsToRead) > 0 {
		sb.WriteString(`
      <div style="background:#fff;padding:20px;margin:20px 0;border-radius:5px;">
        <p style="margin-top:0;font-weight:bold;">📖 Recommendations:</p>
        <ul style="margin:10px 0;">`)
		for _, rec := range d.SurahsToRead {
			fmt.Fprintf(&sb, "<li>%s</li>", rec)
		}
		sb.WriteString(`</ul>
      </div>`)
	}

	sb.WriteString(hadithBlock(hadith))
	sb.WriteString(`
      <p>You can do this! Every letter you recite is a blessing. May Allah facilitate your journey and accept your efforts.</p>`)

	return "Your Quran Completion Goal Needs Attention 📖", emailShell(sb.String())
}
