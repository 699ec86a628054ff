package handler_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"image"
	"image/png"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"Notely/config"
	"Notely/dao"
	"Notely/dao/cache"
	"Notely/handler"
	"Notely/models"
	"Notely/pkg/server"
	"Notely/service"
	"Notely/types"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type envelope struct {
	Code int             `json:"code"`
	Msg  string          `json:"msg"`
	Data json.RawMessage `json:"data"`
}

func newTestApp(t *testing.T) http.Handler {
	t.Helper()

	dsn := fmt.Sprintf("file:notely_handler_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(
		&models.Users{},
		&models.Note{},
		&models.File{},
		&models.Image{},
	))

	cfg := &config.Config{
		App:    &config.App{Env: "test", Debug: true},
		Jwt:    &config.Jwt{Secret: "handler-test-secret", ExpiresTime: 3600},
		Upload: &config.Upload{},
	}

	noteCache := cache.NewNoteCache(redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	}))

	users := dao.NewUsers(db)
	noteService := &service.NoteService{
		NoteDAO:   dao.NewNoteDAO(db),
		ImageDAO:  dao.NewImageDAO(db),
		FileDAO:   dao.NewFileDAO(db),
		UsersRepo: users,
		NoteCache: noteCache,
		Config:    cfg,
	}
	authService := &service.AuthService{UsersRepo: users, Config: cfg}

	handlers := &server.Handlers{
		Auth: &handler.Auth{AuthService: authService},
		Note: &handler.Note{NoteService: noteService, Config: cfg},
		File: &handler.File{NoteService: noteService},
	}
	return server.NewGinEngine(cfg, handlers)
}

func doJSON(t *testing.T, app http.Handler, method, path string, body any, token string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	app.ServeHTTP(rec, req)

	var env envelope
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	}
	return rec, env
}

func registerAndLogin(t *testing.T, app http.Handler, username string) string {
	t.Helper()
	rec, _ := doJSON(t, app, http.MethodPost, "/api/v1/auth/register", types.RegisterRequest{
		Username: username,
		Password: "s3cret-pass",
	}, "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec, env := doJSON(t, app, http.MethodPost, "/api/v1/auth/login", types.LoginRequest{
		Username: username,
		Password: "s3cret-pass",
	}, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp types.LoginResponse
	require.NoError(t, json.Unmarshal(env.Data, &resp))
	require.NotEmpty(t, resp.AccessToken)
	return resp.AccessToken
}

func testPNG(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 2, 2))))
	return buf.Bytes()
}

func saveNote(t *testing.T, app http.Handler, token string, fields map[string]string, images [][]byte, altTexts []string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	for _, alt := range altTexts {
		require.NoError(t, w.WriteField("alt_texts", alt))
	}
	for i, img := range images {
		part, err := w.CreateFormFile("images", fmt.Sprintf("photo-%d.png", i))
		require.NoError(t, err)
		_, err = part.Write(img)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/notes", &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	app.ServeHTTP(rec, req)

	var env envelope
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	}
	return rec, env
}

func TestNoteLifecycle(t *testing.T) {
	app := newTestApp(t)
	token := registerAndLogin(t, app, "alice")

	// 新建带一张图片的笔记
	rec, env := saveNote(t, app, token, map[string]string{
		"title":   "Groceries",
		"content": "Milk, eggs",
	}, [][]byte{testPNG(t)}, []string{"fridge"})
	require.Equal(t, http.StatusOK, rec.Code)
	require.Zero(t, env.Code)

	var saved types.SaveNoteResponse
	require.NoError(t, json.Unmarshal(env.Data, &saved))
	require.Equal(t, "Note created", saved.Message)
	require.Equal(t, "alice", saved.OwnerUsername)

	// 读取详情
	rec, env = doJSON(t, app, http.MethodGet, fmt.Sprintf("/api/v1/notes/%d", saved.NoteID), nil, token)
	require.Equal(t, http.StatusOK, rec.Code)

	var detail types.NoteDetail
	require.NoError(t, json.Unmarshal(env.Data, &detail))
	require.Equal(t, "Groceries", detail.Title)
	require.Len(t, detail.Images, 1)
	require.NotNil(t, detail.Images[0].AltText)
	require.Equal(t, "fridge", *detail.Images[0].AltText)

	// 文件直链访问，无需鉴权
	req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/api/v1/files/%d", detail.Images[0].FileID), nil)
	fileRec := httptest.NewRecorder()
	app.ServeHTTP(fileRec, req)
	require.Equal(t, http.StatusOK, fileRec.Code)
	require.Equal(t, "image/png", fileRec.Header().Get("Content-Type"))
	require.Equal(t, testPNG(t), fileRec.Body.Bytes())

	// 更新
	rec, env = saveNote(t, app, token, map[string]string{
		"id":      fmt.Sprintf("%d", saved.NoteID),
		"title":   "Groceries v2",
		"content": "Milk, eggs, bread",
	}, nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(env.Data, &saved))
	require.Equal(t, "Note updated", saved.Message)

	// 删除图片
	rec, _ = doJSON(t, app, http.MethodDelete, fmt.Sprintf("/api/v1/images/%d", detail.Images[0].ImageID), nil, token)
	require.Equal(t, http.StatusOK, rec.Code)

	rec, env = doJSON(t, app, http.MethodGet, fmt.Sprintf("/api/v1/notes/%d", saved.NoteID), nil, token)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(env.Data, &detail))
	require.Empty(t, detail.Images)

	// 删除笔记
	rec, _ = doJSON(t, app, http.MethodDelete, fmt.Sprintf("/api/v1/notes/%d", saved.NoteID), nil, token)
	require.Equal(t, http.StatusOK, rec.Code)

	rec, _ = doJSON(t, app, http.MethodGet, fmt.Sprintf("/api/v1/notes/%d", saved.NoteID), nil, token)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestNote_Unauthorized(t *testing.T) {
	app := newTestApp(t)

	rec, _ := doJSON(t, app, http.MethodGet, "/api/v1/notes/1", nil, "")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestNote_ForeignNoteIs404(t *testing.T) {
	app := newTestApp(t)
	aliceToken := registerAndLogin(t, app, "alice")
	bobToken := registerAndLogin(t, app, "bob")

	rec, env := saveNote(t, app, aliceToken, map[string]string{
		"title":   "mine",
		"content": "secret",
	}, nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var saved types.SaveNoteResponse
	require.NoError(t, json.Unmarshal(env.Data, &saved))

	rec, _ = doJSON(t, app, http.MethodGet, fmt.Sprintf("/api/v1/notes/%d", saved.NoteID), nil, bobToken)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestNote_ValidationErrors(t *testing.T) {
	app := newTestApp(t)
	token := registerAndLogin(t, app, "alice")

	rec, _ := saveNote(t, app, token, map[string]string{
		"title":   "",
		"content": "",
	}, nil, nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp struct {
		Code int    `json:"code"`
		Msg  string `json:"msg"`
		Data struct {
			Fields map[string][]string `json:"fields"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Contains(t, resp.Data.Fields, "title")
	require.Contains(t, resp.Data.Fields, "content")
}
