package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dmitrijs2005/unsaid/internal/client/services"
	"github.com/dmitrijs2005/unsaid/internal/companion"
	"github.com/dmitrijs2005/unsaid/internal/diary"
	"github.com/dmitrijs2005/unsaid/internal/quota"
	"github.com/dmitrijs2005/unsaid/internal/rpc"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7C6FB0"))
	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))
	okStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#5FB38A"))
	tagStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#5B8DEF"))
	replyStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#444444")).
			Padding(0, 1).
			Italic(true)
	todayStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	busyStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#7C6FB0")).Bold(true)
)

// shortIDLen is how much of an entry id the list shows; commands accept
// any unique prefix.
const shortIDLen = 8

func shortID(id string) string {
	if len(id) > shortIDLen {
		return id[:shortIDLen]
	}
	return id
}

func formatTime(ms int64, loc *time.Location) string {
	return time.UnixMilli(ms).In(loc).Format("Mon 02 Jan 2006 15:04")
}

func excerpt(s string, n int) string {
	s = strings.Join(strings.Fields(s), " ")
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}

func markers(e diary.Entry) string {
	var m []string
	if e.IsPinned {
		m = append(m, "📌")
	}
	if e.IsFavorite {
		m = append(m, "★")
	}
	if e.HasAudio() {
		m = append(m, "♪")
	}
	return strings.Join(m, " ")
}

func emotionTags(em []diary.Emotion) string {
	if len(em) == 0 {
		return ""
	}
	tags := make([]string, len(em))
	for i, e := range em {
		tags[i] = "#" + string(e)
	}
	return tagStyle.Render(strings.Join(tags, " "))
}

func renderEntryLine(e diary.Entry, loc *time.Location) string {
	parts := []string{
		mutedStyle.Render(shortID(e.ID)),
		formatTime(e.Timestamp, loc),
		titleStyle.Render(string(e.Type)),
	}
	if m := markers(e); m != "" {
		parts = append(parts, m)
	}
	line := strings.Join(parts, "  ")
	if e.Content != "" {
		line += "\n    " + excerpt(e.Content, 70)
	}
	if t := emotionTags(e.Emotions); t != "" {
		line += "\n    " + t
	}
	return line
}

func renderList(entries []diary.Entry, loc *time.Location) string {
	if len(entries) == 0 {
		return mutedStyle.Render("Nothing here yet.")
	}
	lines := make([]string, len(entries))
	for i, e := range entries {
		lines[i] = renderEntryLine(e, loc)
	}
	return strings.Join(lines, "\n")
}

func renderEntry(e diary.Entry, loc *time.Location) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(strings.ToUpper(string(e.Type))))
	if m := markers(e); m != "" {
		b.WriteString("  " + m)
	}
	b.WriteString("\n" + mutedStyle.Render(formatTime(e.Timestamp, loc)+"  "+e.ID) + "\n\n")
	if e.Content != "" {
		b.WriteString(e.Content + "\n")
	}
	if t := emotionTags(e.Emotions); t != "" {
		b.WriteString("\n" + t + "\n")
	}
	if e.HasAudio() {
		b.WriteString(mutedStyle.Render("voice note: "+e.AudioID+" (use 'audio "+shortID(e.ID)+"')") + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// renderCalendar draws a Sunday-first month grid. Days with entries show
// their count.
func renderCalendar(year int, month time.Month, cells []diary.CalendarCell) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("%s %d", month, year)) + "\n")
	b.WriteString(mutedStyle.Render(" Su    Mo    Tu    We    Th    Fr    Sa") + "\n")

	for i, c := range cells {
		cell := "      "
		if c.Day > 0 {
			cell = fmt.Sprintf("%3d   ", c.Day)
			if c.Count > 0 {
				cell = fmt.Sprintf("%3d·%-2d", c.Day, c.Count)
			}
			if c.Today {
				cell = todayStyle.Render(cell)
			} else if c.Count > 0 {
				cell = busyStyle.Render(cell)
			}
		}
		b.WriteString(cell)
		if i%7 == 6 {
			b.WriteString("\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func renderStats(st services.Stats) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Your journal") + "\n")
	fmt.Fprintf(&b, "entries:   %d\n", st.Total)
	fmt.Fprintf(&b, "streak:    %d day(s)\n", st.Streak)
	fmt.Fprintf(&b, "favorites: %d\n", st.Favorites)
	for _, t := range []diary.EntryType{diary.TypeVent, diary.TypeLetter, diary.TypeReflection, diary.TypeChat} {
		if n := st.ByType[t]; n > 0 {
			fmt.Fprintf(&b, "  %-11s %d\n", t, n)
		}
	}
	if len(st.Emotions) > 0 {
		b.WriteString(titleStyle.Render("Feelings you named") + "\n")
		for _, ec := range st.Emotions {
			fmt.Fprintf(&b, "  %-12s %s %d\n", ec.Emotion, tagStyle.Render(strings.Repeat("▇", ec.Count)), ec.Count)
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

// renderHistory shows the conversation so far; it always opens with the
// companion's greeting.
func renderHistory(msgs []companion.Message) string {
	lines := make([]string, 0, len(msgs))
	for _, m := range msgs {
		if m.Role == companion.RoleModel {
			lines = append(lines, replyStyle.Render(m.Text))
		} else {
			lines = append(lines, mutedStyle.Render("you: ")+m.Text)
		}
	}
	return strings.Join(lines, "\n")
}

func renderReply(r rpc.ChatResponse) string {
	s := replyStyle.Render(r.Reply)
	if r.Allowed && !r.Fallback {
		s += "\n" + mutedStyle.Render(fmt.Sprintf("%d companion replies left today", r.Remaining))
	}
	return s
}

func renderAllowance(a quota.Allowance) string {
	if !a.Allowed {
		return errorStyle.Render(fmt.Sprintf("Daily limit of %d companion replies reached. It resets tomorrow.", a.Limit))
	}
	return okStyle.Render(fmt.Sprintf("%d of %d companion replies left today", a.Remaining, a.Limit))
}
