package tmux

import (
	"errors"
	"testing"

	gotmux "github.com/atomicstack/gotmuxcc/gotmuxcc"
)

type fakeClient struct {
	sessions       []*gotmux.Session
	sessionsErr    error
	windows        []*gotmux.Window
	windowsErr     error
	clients        []*gotmux.Client
	switchErr      error
	switchCalls    int
	lastSwitchOpts *gotmux.SwitchClientOptions
	newErr         error
	newNames       []string
	selectCalls    []string
	selectErr      error
	displayFn      func(target, format string) (string, error)
	closed         int
}

func (f *fakeClient) ListSessions() ([]*gotmux.Session, error) {
	if f.sessionsErr != nil {
		return nil, f.sessionsErr
	}
	return f.sessions, nil
}

func (f *fakeClient) ListAllWindows() ([]*gotmux.Window, error) {
	if f.windowsErr != nil {
		return nil, f.windowsErr
	}
	return f.windows, nil
}

func (f *fakeClient) ListClients() ([]*gotmux.Client, error) {
	return f.clients, nil
}

func (f *fakeClient) SwitchClient(opts *gotmux.SwitchClientOptions) error {
	f.switchCalls++
	if opts != nil {
		cp := *opts
		f.lastSwitchOpts = &cp
	}
	return f.switchErr
}

func (f *fakeClient) SelectWindow(target string) error {
	f.selectCalls = append(f.selectCalls, target)
	return f.selectErr
}

func (f *fakeClient) NewSession(opts *gotmux.SessionOptions) (*gotmux.Session, error) {
	if f.newErr != nil {
		return nil, f.newErr
	}
	f.newNames = append(f.newNames, opts.Name)
	return &gotmux.Session{Name: opts.Name}, nil
}

func (f *fakeClient) DisplayMessage(target, format string) (string, error) {
	if f.displayFn != nil {
		return f.displayFn(target, format)
	}
	return "", nil
}

func (f *fakeClient) Close() error {
	f.closed++
	return nil
}

func withFakeClient(t *testing.T, fake *fakeClient) {
	t.Helper()
	orig := newTmux
	newTmux = func(string) (tmuxClient, error) { return fake, nil }
	t.Cleanup(func() { newTmux = orig })
	t.Setenv("TMUX_PANE", "")
}

func TestFetchSessionsBuildsLabels(t *testing.T) {
	fake := &fakeClient{
		sessions: []*gotmux.Session{
			{Name: "work", Windows: 3, Attached: 1},
			{Name: "scratch", Windows: 1},
			nil,
		},
		clients: []*gotmux.Client{{Session: "work"}},
	}
	withFakeClient(t, fake)

	snap, err := FetchSessions("")
	if err != nil {
		t.Fatalf("FetchSessions returned error: %v", err)
	}
	if snap.Current != "work" {
		t.Fatalf("expected current session work, got %q", snap.Current)
	}
	if len(snap.Sessions) != 2 {
		t.Fatalf("expected 2 sessions, got %d", len(snap.Sessions))
	}
	if got := snap.Sessions[0].Label; got != "work: 3 windows (attached)" {
		t.Fatalf("unexpected label %q", got)
	}
	if got := snap.Sessions[1].Label; got != "scratch: 1 window" {
		t.Fatalf("unexpected label %q", got)
	}
	if !snap.Sessions[0].Current || snap.Sessions[1].Current {
		t.Fatalf("expected only work to be current, got %#v", snap.Sessions)
	}
	if fake.closed != 1 {
		t.Fatalf("expected client to be closed once, got %d", fake.closed)
	}
}

func TestFetchSessionsPrefersPaneSession(t *testing.T) {
	fake := &fakeClient{
		sessions: []*gotmux.Session{{Name: "a"}, {Name: "b"}},
		clients:  []*gotmux.Client{{Session: "a"}},
		displayFn: func(target, format string) (string, error) {
			if target != "%3" {
				t.Fatalf("expected pane target %%3, got %q", target)
			}
			return "b\n", nil
		},
	}
	withFakeClient(t, fake)
	t.Setenv("TMUX_PANE", "%3")

	snap, err := FetchSessions("")
	if err != nil {
		t.Fatalf("FetchSessions returned error: %v", err)
	}
	if snap.Current != "b" {
		t.Fatalf("expected current b, got %q", snap.Current)
	}
}

func TestFetchSessionsWrapsError(t *testing.T) {
	boom := errors.New("boom")
	withFakeClient(t, &fakeClient{sessionsErr: boom})
	if _, err := FetchSessions(""); !errors.Is(err, boom) {
		t.Fatalf("expected wrapped boom, got %v", err)
	}
}

func TestFetchWindowsUsesSessionLists(t *testing.T) {
	fake := &fakeClient{
		windows: []*gotmux.Window{
			{Index: 1, Name: "editor", Active: true, ActiveSessionsList: []string{"work"}},
			{Index: 2, Name: "logs", LinkedSessionsList: []string{"ops"}},
		},
		clients: []*gotmux.Client{{Session: "work"}},
	}
	withFakeClient(t, fake)

	snap, err := FetchWindows("")
	if err != nil {
		t.Fatalf("FetchWindows returned error: %v", err)
	}
	if len(snap.Windows) != 2 {
		t.Fatalf("expected 2 windows, got %d", len(snap.Windows))
	}
	first := snap.Windows[0]
	if first.ID != "work:1" || first.Label != "work:1 editor" || !first.Current {
		t.Fatalf("unexpected first window %#v", first)
	}
	second := snap.Windows[1]
	if second.ID != "ops:2" || second.Current {
		t.Fatalf("unexpected second window %#v", second)
	}
}

func TestSwitchClientSetsTargets(t *testing.T) {
	fake := &fakeClient{}
	withFakeClient(t, fake)

	if err := SwitchClient("", "/dev/ttys001", " work "); err != nil {
		t.Fatalf("SwitchClient returned error: %v", err)
	}
	if fake.lastSwitchOpts == nil {
		t.Fatalf("expected switch options to be recorded")
	}
	if fake.lastSwitchOpts.TargetSession != "work" {
		t.Fatalf("expected target session work, got %q", fake.lastSwitchOpts.TargetSession)
	}
	if fake.lastSwitchOpts.TargetClient != "/dev/ttys001" {
		t.Fatalf("expected target client, got %q", fake.lastSwitchOpts.TargetClient)
	}
	if err := SwitchClient("", "", "  "); err == nil {
		t.Fatalf("expected error for empty target")
	}
}

func TestSelectWindowSwitchesThenSelects(t *testing.T) {
	fake := &fakeClient{}
	withFakeClient(t, fake)

	if err := SelectWindow("", "", "ops:2"); err != nil {
		t.Fatalf("SelectWindow returned error: %v", err)
	}
	if fake.lastSwitchOpts == nil || fake.lastSwitchOpts.TargetSession != "ops" {
		t.Fatalf("expected switch to ops, got %#v", fake.lastSwitchOpts)
	}
	if len(fake.selectCalls) != 1 || fake.selectCalls[0] != "ops:2" {
		t.Fatalf("expected select-window ops:2, got %v", fake.selectCalls)
	}
}

func TestSelectWindowStopsOnSwitchError(t *testing.T) {
	fake := &fakeClient{switchErr: errors.New("no client")}
	withFakeClient(t, fake)

	if err := SelectWindow("", "", "ops:2"); err == nil {
		t.Fatalf("expected error")
	}
	if len(fake.selectCalls) != 0 {
		t.Fatalf("expected no select-window call, got %v", fake.selectCalls)
	}
}

func TestNewSessionRequiresName(t *testing.T) {
	fake := &fakeClient{}
	withFakeClient(t, fake)

	if err := NewSession("", "   "); err == nil {
		t.Fatalf("expected error for blank name")
	}
	if err := NewSession("", " fresh "); err != nil {
		t.Fatalf("NewSession returned error: %v", err)
	}
	if len(fake.newNames) != 1 || fake.newNames[0] != "fresh" {
		t.Fatalf("expected session fresh, got %v", fake.newNames)
	}
}

func TestResolveSocketPathPrefersFlag(t *testing.T) {
	t.Setenv("TMUX_TYPEAHEAD_SOCKET", "/env/socket")
	got, err := ResolveSocketPath("/flag/socket")
	if err != nil || got != "/flag/socket" {
		t.Fatalf("expected flag socket, got %q (%v)", got, err)
	}
	got, err = ResolveSocketPath("")
	if err != nil || got != "/env/socket" {
		t.Fatalf("expected env socket, got %q (%v)", got, err)
	}
}

func TestResolveSocketPathFromTmuxEnv(t *testing.T) {
	t.Setenv("TMUX_TYPEAHEAD_SOCKET", "")
	t.Setenv("TMUX", "/tmp/tmux-501/default,1234,0")
	got, err := ResolveSocketPath("")
	if err != nil || got != "/tmp/tmux-501/default" {
		t.Fatalf("expected socket from TMUX, got %q (%v)", got, err)
	}
}
