// Package console is a transport printing sessions on a terminal.
// Every outbound message gets a handle, the way a chat message would get an id.
package console

import (
	"bytes"
	"context"
	"fmt"
	"game-hub/contract"
	"game-hub/domain"
	"io"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"
)

var _ contract.Renderer = (*Renderer)(nil)

type Renderer struct {
	mu      sync.Mutex
	out     io.Writer
	colours bool
	censor  contract.NameCensor
	handles atomic.Uint64
}

func NewRenderer(out io.Writer, colours bool) *Renderer {
	return &Renderer{out: out, colours: colours}
}

// WithCensor masks forbidden words in every displayed participant name.
func (r *Renderer) WithCensor(censor contract.NameCensor) *Renderer {
	r.censor = censor
	return r
}

func (r *Renderer) name(participant domain.Participant) string {
	if r.censor == nil {
		return participant.DisplayName()
	}
	name, _ := r.censor.Censor(participant.DisplayName())
	return name
}

func (r *Renderer) nextHandle() string {
	return fmt.Sprintf("msg-%d", r.handles.Add(1))
}

func (r *Renderer) header(text string, style color.Style) string {
	header := fmt.Sprintf("  ====== %s ======", text)
	if r.colours {
		header = style.Render(header)
	}
	return header
}

func (r *Renderer) write(b []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, err := r.out.Write(b)
	return err
}

func (r *Renderer) line(format string, args ...any) error {
	return r.write([]byte(fmt.Sprintf(format, args...) + "\n"))
}

func newTable(w io.Writer) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_CENTER)
	return table
}

// RenderState draws the board of each seat. A seat without an artifact yet gets a new handle.
func (r *Renderer) RenderState(ctx context.Context, session *domain.Session, seats ...int) error {
	if len(seats) == 0 {
		seats = lo.Range(session.Seats())
	}
	var buf bytes.Buffer
	for _, seat := range seats {
		if seat < 0 || seat >= session.Seats() {
			continue
		}
		handle := session.Handle(seat)
		if handle == "" {
			handle = r.nextHandle()
			session.SetHandle(seat, handle)
		}
		view := session.Logic.View(seat)
		participant := session.Participants[seat]
		fmt.Fprintln(&buf, r.header(fmt.Sprintf("%s [%s] %s", view.Title, handle, r.name(participant)), color.New(color.BgBlack, color.FgGreen)))

		table := newTable(&buf)
		if len(view.Cells) > 0 {
			table.SetHeader(append([]string{""}, lo.Map(lo.Range(len(view.Cells[0])), func(j int, _ int) string {
				return strconv.Itoa(j)
			})...))
		}
		for i, row := range view.Cells {
			table.Append(append([]string{strconv.Itoa(i)}, row...))
		}
		table.Render()
		fmt.Fprintln(&buf, view.Status)
	}
	return r.write(buf.Bytes())
}

func (r *Renderer) RenderFinal(ctx context.Context, session *domain.Session) error {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, r.header(fmt.Sprintf("%s session %s is over", session.Kind, session.ID), color.New(color.BgBlack, color.FgCyan)))
	table := newTable(&buf)
	table.SetHeader([]string{"Seat", "Participant", "Status", "Moves"})
	for _, result := range session.Results() {
		table.Append([]string{
			strconv.Itoa(result.Seat),
			string(result.Participant),
			string(result.Status),
			strconv.Itoa(result.Moves),
		})
	}
	table.Render()
	return r.write(buf.Bytes())
}

func (r *Renderer) RenderCancelled(ctx context.Context, session *domain.Session, cause domain.Cause) error {
	return r.line("%s", r.header(fmt.Sprintf("%s session %s cancelled: %s", session.Kind, session.ID, cause), color.New(color.BgBlack, color.FgRed)))
}

func (r *Renderer) DisposeStaleArtifact(ctx context.Context, evt domain.InboundEvent) error {
	handle := evt.Handle
	if handle == "" {
		handle = "-"
	}
	return r.line("artifact %s of %s disposed, session %s is gone", handle, evt.Actor, evt.SessionID)
}

func (r *Renderer) AnnounceCohortFormed(ctx context.Context, session *domain.Session) error {
	names := lo.Map(session.Participants, func(p domain.Participant, _ int) string { return r.name(p) })
	return r.line("%s", r.header(fmt.Sprintf("%s session %s formed with %v", session.Kind, session.ID, names), color.New(color.BgBlack, color.FgYellow)))
}

func (r *Renderer) AnnounceCohortNotFound(ctx context.Context, entry domain.WaitlistEntry) error {
	return r.line("%s is looking for %s partners", r.name(entry.Participant), entry.Kind)
}

func (r *Renderer) AnnounceWithdrawn(ctx context.Context, entry domain.WaitlistEntry) error {
	return r.line("%s left the %s waitlist", r.name(entry.Participant), entry.Kind)
}
