package telegram

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"arthurflix/config"
	"arthurflix/internal/domain/entity"
	"arthurflix/internal/domain/service"
	mockService "arthurflix/internal/mocks/service"
	mockUsecase "arthurflix/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testBotToken = "123:abc"

type call struct {
	method string
	form   map[string]string
}

type fakeTelegram struct {
	server  *httptest.Server
	getMe   atomic.Int32
	mu      sync.Mutex
	calls   []call
	failGet bool
}

func newFakeTelegram(t *testing.T) *fakeTelegram {
	f := &fakeTelegram{}
	f.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		method := r.URL.Path[strings.LastIndex(r.URL.Path, "/")+1:]
		w.Header().Set("Content-Type", "application/json")

		if method == "getMe" {
			f.getMe.Add(1)
			if f.failGet {
				_, _ = io.WriteString(w, `{"ok":false,"error_code":401,"description":"Unauthorized"}`)

				return
			}
			_, _ = io.WriteString(w, `{"ok":true,"result":{"id":1,"is_bot":true,"first_name":"ArthurFlix","username":"arthurflix_bot"}}`)

			return
		}

		_ = r.ParseForm()
		form := map[string]string{}
		for k := range r.PostForm {
			form[k] = r.PostForm.Get(k)
		}
		f.mu.Lock()
		f.calls = append(f.calls, call{method: method, form: form})
		f.mu.Unlock()

		_, _ = io.WriteString(w, `{"ok":true,"result":{"message_id":7,"date":0,"chat":{"id":42,"type":"private"}}}`)
	}))
	t.Cleanup(f.server.Close)

	return f
}

func (f *fakeTelegram) recorded() []call {
	f.mu.Lock()
	defer f.mu.Unlock()

	return append([]call(nil), f.calls...)
}

type botFixture struct {
	fake      *fakeTelegram
	tokens    *mockUsecase.MockTokenUsecase
	publisher *mockService.MockEventPublisher
	bot       *botClient
}

func newBotFixture(t *testing.T) *botFixture {
	f := &botFixture{
		fake:      newFakeTelegram(t),
		tokens:    mockUsecase.NewMockTokenUsecase(t),
		publisher: mockService.NewMockEventPublisher(t),
	}
	cfg := &config.Config{Telegram: &config.TelegramConfig{
		BotToken:    testBotToken,
		BotUsername: "@arthurflix_bot",
		APIEndpoint: f.fake.server.URL + "/bot%s/%s",
	}}
	f.bot = NewBotClient(BotClientParams{
		Config:    cfg,
		Tokens:    f.tokens,
		Publisher: f.publisher,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}).(*botClient)

	return f
}

func startUpdate(text string) []byte {
	entities := ""
	if strings.HasPrefix(text, "/") {
		cmdLen := len(text)
		if i := strings.IndexByte(text, ' '); i > 0 {
			cmdLen = i
		}
		entities = `,"entities":[{"type":"bot_command","offset":0,"length":` + strconv.Itoa(cmdLen) + `}]`
	}

	return []byte(`{"update_id":1,"message":{"message_id":5,"date":0,"chat":{"id":42,"type":"private"},"text":"` + text + `"` + entities + `}}`)
}

func TestBotClient_HandleUpdate_SendsDocument(t *testing.T) {
	f := newBotFixture(t)
	itemID := uuid.New()
	record := &entity.DownloadToken{Token: "tok-1", ItemID: itemID, Quality: entity.QualityHD, FileID: "BQACAgUAAxkBAAIBY2ZkZWZpbGVpZGZvcnRlc3Rpbmc"}

	f.tokens.EXPECT().ValidateDownloadToken(mock.Anything, "tok-1").Return(entity.ValidToken(record), nil).Once()
	f.publisher.EXPECT().PublishDownloadEvent(mock.Anything, mock.MatchedBy(func(e *service.DownloadEvent) bool {
		return e.Kind == string(entity.DownloadKindTelegram) && e.ItemID == itemID.String() && e.Quality == "HD"
	})).Return(nil).Once()

	require.NoError(t, f.bot.HandleUpdate(context.Background(), startUpdate("/start tok-1")))

	calls := f.fake.recorded()
	require.Len(t, calls, 1)
	assert.Equal(t, "sendDocument", calls[0].method)
	assert.Equal(t, record.FileID, calls[0].form["document"])
	assert.Equal(t, "42", calls[0].form["chat_id"])
}

func TestBotClient_HandleUpdate_Replies(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		setup    func(f *botFixture)
		wantText string
	}{
		{
			name: "expired token",
			text: "/start tok-old",
			setup: func(f *botFixture) {
				f.tokens.EXPECT().ValidateDownloadToken(mock.Anything, "tok-old").
					Return(entity.ExpiredToken[entity.DownloadToken](), nil).Once()
			},
			wantText: invalidLinkText,
		},
		{
			name: "no telegram file",
			text: "/start tok-2",
			setup: func(f *botFixture) {
				f.tokens.EXPECT().ValidateDownloadToken(mock.Anything, "tok-2").
					Return(entity.ValidToken(&entity.DownloadToken{Token: "tok-2"}), nil).Once()
			},
			wantText: noFileText,
		},
		{name: "bare start", text: "/start", wantText: helpText},
		{name: "free text", text: "hello", wantText: helpText},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newBotFixture(t)
			if tt.setup != nil {
				tt.setup(f)
			}

			require.NoError(t, f.bot.HandleUpdate(context.Background(), startUpdate(tt.text)))

			calls := f.fake.recorded()
			require.Len(t, calls, 1)
			assert.Equal(t, "sendMessage", calls[0].method)
			assert.Equal(t, tt.wantText, calls[0].form["text"])
		})
	}
}

func TestBotClient_HandleUpdate_IgnoresNonMessages(t *testing.T) {
	f := newBotFixture(t)

	require.NoError(t, f.bot.HandleUpdate(context.Background(), []byte(`{"update_id":2}`)))

	assert.Zero(t, f.fake.getMe.Load())
}

func TestBotClient_HandleUpdate_BadPayload(t *testing.T) {
	f := newBotFixture(t)

	require.Error(t, f.bot.HandleUpdate(context.Background(), []byte(`{`)))
}

func TestBotClient_InitializesOnce(t *testing.T) {
	f := newBotFixture(t)
	f.fake.failGet = true

	for range 3 {
		require.Error(t, f.bot.HandleUpdate(context.Background(), startUpdate("hello")))
	}

	assert.Equal(t, int32(1), f.fake.getMe.Load())
}

func TestBotClient_Username(t *testing.T) {
	f := newBotFixture(t)

	assert.Equal(t, "arthurflix_bot", f.bot.Username())
}

func TestBotClient_InitAtStartup(t *testing.T) {
	f := newBotFixture(t)

	require.NoError(t, f.bot.Init(context.Background()))
	require.NoError(t, f.bot.Init(context.Background()))
	assert.Equal(t, int32(1), f.fake.getMe.Load())

	require.NoError(t, f.bot.HandleUpdate(context.Background(), startUpdate("hello")))
	assert.Equal(t, int32(1), f.fake.getMe.Load())
}

func TestBotClient_InitFailureIsRemembered(t *testing.T) {
	f := newBotFixture(t)
	f.fake.failGet = true

	require.Error(t, f.bot.Init(context.Background()))
	require.Error(t, f.bot.HandleUpdate(context.Background(), startUpdate("hello")))
	assert.Equal(t, int32(1), f.fake.getMe.Load())
}

func TestBotClient_UsernameFromTelegram(t *testing.T) {
	f := newBotFixture(t)
	f.bot.username = ""

	assert.Equal(t, "arthurflix_bot", f.bot.Username())
	assert.Equal(t, int32(1), f.fake.getMe.Load())
}

func TestBotClient_UsernameUnknownWhenInitFails(t *testing.T) {
	f := newBotFixture(t)
	f.bot.username = ""
	f.fake.failGet = true

	assert.Empty(t, f.bot.Username())
}
