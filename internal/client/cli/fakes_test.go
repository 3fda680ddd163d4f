package cli

import (
	"bufio"
	"bytes"
	"context"
	"strings"
	"time"

	"github.com/dmitrijs2005/unsaid/internal/client/config"
	"github.com/dmitrijs2005/unsaid/internal/client/services"
	"github.com/dmitrijs2005/unsaid/internal/common"
	"github.com/dmitrijs2005/unsaid/internal/companion"
	"github.com/dmitrijs2005/unsaid/internal/diary"
	"github.com/dmitrijs2005/unsaid/internal/logging"
	"github.com/dmitrijs2005/unsaid/internal/quota"
	"github.com/dmitrijs2005/unsaid/internal/rpc"
)

func readerFromLines(lines ...string) *bufio.Reader {
	if len(lines) == 0 || lines[len(lines)-1] != "" {
		lines = append(lines, "")
	}
	return bufio.NewReader(strings.NewReader(strings.Join(lines, "\n")))
}

var testNow = time.Date(2025, time.March, 14, 18, 30, 0, 0, time.UTC)

type fakeJournal struct {
	entries []diary.Entry
	offline bool

	saved   []services.Draft
	pending bool
	saveErr error

	listFilter diary.Filter
	listErr    error

	pinned, unpinned, favs, deleted []string
	actionErr                       error
	favResult                       bool
	deletePending                   bool

	attached map[string]string

	syncCalls int
	syncRep   services.SyncReport
	syncErr   error

	stats services.Stats
}

func (f *fakeJournal) Save(_ context.Context, _ string, d services.Draft) (services.Saved, error) {
	if f.saveErr != nil {
		return services.Saved{}, f.saveErr
	}
	f.saved = append(f.saved, d)
	return services.Saved{Entry: diary.Entry{ID: "0123456789abcdef", Type: d.Type, Content: d.Text}, Pending: f.pending}, nil
}

func (f *fakeJournal) List(_ context.Context, _ string, flt diary.Filter) (services.Listing, error) {
	f.listFilter = flt
	if f.listErr != nil {
		return services.Listing{}, f.listErr
	}
	return services.Listing{Entries: flt.Apply(f.entries), Offline: f.offline}, nil
}

func (f *fakeJournal) Get(_ context.Context, _ string, id string) (diary.Entry, error) {
	for _, e := range f.entries {
		if e.ID == id {
			return e, nil
		}
	}
	return diary.Entry{}, common.ErrorNotFound
}

func (f *fakeJournal) Pin(_ context.Context, _ string, id string) error {
	f.pinned = append(f.pinned, id)
	return f.actionErr
}

func (f *fakeJournal) Unpin(_ context.Context, _ string, id string) error {
	f.unpinned = append(f.unpinned, id)
	return f.actionErr
}

func (f *fakeJournal) ToggleFavorite(_ context.Context, _ string, id string) (bool, error) {
	f.favs = append(f.favs, id)
	return f.favResult, f.actionErr
}

func (f *fakeJournal) AttachAudio(_ context.Context, _ string, id, audioID string) error {
	if f.attached == nil {
		f.attached = map[string]string{}
	}
	f.attached[id] = audioID
	return f.actionErr
}

func (f *fakeJournal) Delete(_ context.Context, _ string, id string) (bool, error) {
	f.deleted = append(f.deleted, id)
	return f.deletePending, f.actionErr
}

func (f *fakeJournal) Sync(context.Context, string) (services.SyncReport, error) {
	f.syncCalls++
	return f.syncRep, f.syncErr
}

func (f *fakeJournal) Stats(context.Context, string) (services.Stats, error) {
	return f.stats, nil
}

func (f *fakeJournal) Now() time.Time           { return testNow }
func (f *fakeJournal) Location() *time.Location { return time.UTC }

type fakeCompanion struct {
	chats   []string
	listens []string
	replies []rpc.ChatResponse
	err     error
	allow   quota.Allowance
	resets  int
}

func (f *fakeCompanion) next() (rpc.ChatResponse, error) {
	if f.err != nil {
		return rpc.ChatResponse{}, f.err
	}
	if len(f.replies) == 0 {
		return rpc.ChatResponse{Reply: "I hear you.", Allowed: true, Remaining: 5}, nil
	}
	r := f.replies[0]
	f.replies = f.replies[1:]
	return r, nil
}

func (f *fakeCompanion) Chat(_ context.Context, text string) (rpc.ChatResponse, error) {
	f.chats = append(f.chats, text)
	return f.next()
}

func (f *fakeCompanion) Listen(_ context.Context, text string) (rpc.ChatResponse, error) {
	f.listens = append(f.listens, text)
	return f.next()
}

func (f *fakeCompanion) Allowance(context.Context) (quota.Allowance, error) { return f.allow, f.err }

func (f *fakeCompanion) History() []companion.Message {
	return []companion.Message{{Role: companion.RoleModel, Text: companion.Greeting}}
}

func (f *fakeCompanion) Reset() { f.resets++ }

type fakeAudio struct {
	attached []string
	audioID  string
	fetched  []string
	path     string
	err      error
}

func (f *fakeAudio) Attach(_ context.Context, path string) (string, error) {
	f.attached = append(f.attached, path)
	return f.audioID, f.err
}

func (f *fakeAudio) Fetch(_ context.Context, audioID string) (string, error) {
	f.fetched = append(f.fetched, audioID)
	return f.path, f.err
}

type fakeAuth struct {
	registered []string
	loginErr   error
	identity   services.Identity
	restoreOK  bool
	loggedOut  bool
	profile    rpc.Profile
	names      []string
	pingErr    error
}

func (f *fakeAuth) Register(_ context.Context, username string, _ []byte) error {
	f.registered = append(f.registered, username)
	return nil
}

func (f *fakeAuth) Login(_ context.Context, username string, _ []byte) (services.Identity, error) {
	if f.loginErr != nil {
		return services.Identity{}, f.loginErr
	}
	return services.Identity{UserName: username, UserID: "u-" + username}, nil
}

func (f *fakeAuth) Restore(context.Context) (services.Identity, bool, error) {
	return f.identity, f.restoreOK, nil
}

func (f *fakeAuth) Logout(context.Context) error { f.loggedOut = true; return nil }

func (f *fakeAuth) Profile(context.Context) (rpc.Profile, error) { return f.profile, nil }

func (f *fakeAuth) SetName(_ context.Context, name string) error {
	f.names = append(f.names, name)
	return nil
}

func (f *fakeAuth) Ping(context.Context) error  { return f.pingErr }
func (f *fakeAuth) Close(context.Context) error { return nil }

type testApp struct {
	*App
	journal   *fakeJournal
	companion *fakeCompanion
	audio     *fakeAudio
	auth      *fakeAuth
	out       *bytes.Buffer
}

func newTestApp(r *bufio.Reader) *testApp {
	ta := &testApp{
		journal:   &fakeJournal{},
		companion: &fakeCompanion{},
		audio:     &fakeAudio{},
		auth:      &fakeAuth{},
		out:       &bytes.Buffer{},
	}
	ta.App = &App{
		config:      &config.Config{OnlineCheckInterval: time.Hour},
		authService: ta.auth,
		journal:     ta.journal,
		companion:   ta.companion,
		audio:       ta.audio,
		logger:      logging.Nop{},
		identity:    services.Identity{UserName: "alice", UserID: "u-alice"},
		mode:        ModeOnline,
		reader:      r,
		out:         ta.out,
	}
	return ta
}

func identityZero() services.Identity { return services.Identity{} }

func bufioReader(s string) *bufio.Reader { return bufio.NewReader(strings.NewReader(s)) }
