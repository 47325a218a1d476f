package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"

	"turnroom/domain"
	"turnroom/projection"
	"turnroom/services"
	"turnroom/turn"
)

type renderer struct {
	out  io.Writer
	room *services.RoomService
	user domain.User
}

func newRenderer(out io.Writer, room *services.RoomService, user domain.User) *renderer {
	return &renderer{out: out, room: room, user: user}
}

// draw reprints the whole room view: timeline table, turn banner,
// online set. The engine coalesces mutations, so a draw per wake-up is
// enough.
func (r *renderer) draw(now time.Time) {
	fmt.Fprintln(r.out)

	table := tablewriter.NewWriter(r.out)
	table.SetHeader([]string{"Time", "Author", "Message", "Seen"})
	table.SetBorder(false)
	table.SetAutoWrapText(false)

	for _, m := range r.room.Snapshot() {
		table.Append([]string{
			m.CreatedAt.Local().Format("15:04"),
			r.authorCell(m),
			r.contentCell(m),
			r.seenCell(m),
		})
	}
	table.Render()

	r.drawTurnBanner(now)
	if online := r.room.Online(); len(online) > 0 {
		fmt.Fprintln(r.out, color.Gray.Sprintf("online: %s", strings.Join(online, ", ")))
	}
}

func (r *renderer) authorCell(m projection.AnnotatedMessage) string {
	if m.IsSystem() {
		return color.Gray.Sprint("system")
	}
	// Group middles and lasts suppress the author name, like the
	// mobile UI suppresses avatars.
	if m.Position == projection.GroupMiddle || m.Position == projection.GroupLast {
		return ""
	}
	name := r.room.Member(m.AuthorID).DisplayName
	if m.AuthorID == r.user.ID {
		return color.Cyan.Sprint(name)
	}
	return name
}

func (r *renderer) contentCell(m projection.AnnotatedMessage) string {
	content := m.Content
	if photo, ok := m.PhotoContent(); ok {
		content = fmt.Sprintf("[photo] %s %s", photo.ImageURL, photo.Caption)
	}
	if m.IsOptimistic() {
		content = color.Gray.Sprintf("%s (sending...)", content)
	}
	if emojis := r.room.Reactions(m.ID); len(emojis) > 0 {
		marks := make([]string, 0, len(emojis))
		for _, reaction := range emojis {
			marks = append(marks, reaction.Emoji)
		}
		content += " " + strings.Join(marks, "")
	}
	return content
}

func (r *renderer) seenCell(m projection.AnnotatedMessage) string {
	if !m.ShowSeen {
		return ""
	}
	return fmt.Sprintf("seen by %d", m.SeenCount)
}

func (r *renderer) drawTurnBanner(now time.Time) {
	switch r.room.TurnState(now) {
	case turn.MyTurnReady:
		fmt.Fprintln(r.out, color.Green.Sprint("your turn! answer with /turn <text>"))
	case turn.MyTurnCooldown:
		fmt.Fprintln(r.out, color.Yellow.Sprint("your turn soon, cooldown running"))
	case turn.OthersTurnReady, turn.OthersTurnCooldown:
		fmt.Fprintln(r.out, color.Gray.Sprint("waiting for the current player"))
	}
}
