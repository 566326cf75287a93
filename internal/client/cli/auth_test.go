package cli

import (
	"bufio"
	"context"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/novakart/storefront/internal/client/api"
	"github.com/novakart/storefront/internal/client/services"
	"github.com/novakart/storefront/internal/client/session"
	"github.com/novakart/storefront/internal/logging"
)

// resetAPI stubs only the password-reset operations; anything else
// panics via the embedded nil interface, which would flag an unexpected
// call immediately.
type resetAPI struct {
	api.Client

	resetCalls []string
}

func (f *resetAPI) InitiateResetPassword(context.Context, string) error { return nil }

func (f *resetAPI) VerifyPasswordResetOTP(context.Context, string, string) error {
	return nil
}
func (f *resetAPI) ResetPassword(_ context.Context, email, newPassword string) error {
	f.resetCalls = append(f.resetCalls, newPassword)
	return nil
}

type memRepo struct {
	mu   sync.Mutex
	data map[string][]byte
}

func (m *memRepo) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.data[key], nil
}

func (m *memRepo) Set(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

func (m *memRepo) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

func (m *memRepo) List(context.Context) (map[string][]byte, error) { return nil, nil }
func (m *memRepo) Clear(context.Context) error                     { return nil }

// stubInput queues up answers for the text and password seams.
func stubInput(t *testing.T, texts, passwords []string) {
	t.Helper()

	origText, origPw, origPrint := getSimpleText, getPassword, printlnFn
	t.Cleanup(func() {
		getSimpleText, getPassword, printlnFn = origText, origPw, origPrint
	})

	printlnFn = func(...any) (int, error) { return 0, nil }
	getSimpleText = func(*bufio.Reader, string, io.Writer) (string, error) {
		require.NotEmpty(t, texts, "ran out of scripted text input")
		next := texts[0]
		texts = texts[1:]
		return next, nil
	}
	getPassword = func(io.Writer, string) (string, error) {
		require.NotEmpty(t, passwords, "ran out of scripted passwords")
		next := passwords[0]
		passwords = passwords[1:]
		return next, nil
	}
}

func newResetApp(t *testing.T) (*App, *resetAPI) {
	t.Helper()
	client := &resetAPI{}
	states := &memRepo{data: map[string][]byte{}}
	log := logging.NewDefault(99)
	sess := session.NewStore(states, log)
	guard := services.NewGuard(client, sess, log)
	return &App{
		log:     log,
		session: sess,
		account: services.NewAccountService(client, sess, states, guard, log, time.Nanosecond, 5),
		reader:  bufio.NewReader(strings.NewReader("")),
	}, client
}

func TestForgotPassword_MismatchedReEntryStopsLocally(t *testing.T) {
	app, client := newResetApp(t)
	// email, then the emailed code; the two passwords disagree
	stubInput(t, []string{"a@b.c", "123456"}, []string{"first", "second"})

	require.NoError(t, app.ForgotPassword(context.Background()))
	assert.Empty(t, client.resetCalls, "mismatch must not reach the server")
}

func TestForgotPassword_MatchingReEntryResets(t *testing.T) {
	app, client := newResetApp(t)
	stubInput(t, []string{"a@b.c", "123456"}, []string{"newpass", "newpass"})

	require.NoError(t, app.ForgotPassword(context.Background()))
	assert.Equal(t, []string{"newpass"}, client.resetCalls)
}
