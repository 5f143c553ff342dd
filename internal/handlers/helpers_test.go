package handlers_test

import (
	"FarmKeeper/internal/auth"
	"FarmKeeper/internal/config"
	"FarmKeeper/internal/handlers"
	"FarmKeeper/internal/model"
	"FarmKeeper/internal/repo"
	"FarmKeeper/internal/service"
	"FarmKeeper/internal/storage"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

const testSecret = "test-secret"

var testDBSeq atomic.Int64

// testEnv runs the full router over an in-memory database and a
// throwaway upload directory, so tests exercise the same path a real
// request takes.
type testEnv struct {
	router    http.Handler
	db        *gorm.DB
	uploadDir string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	dsn := fmt.Sprintf("file:handler_test_%d?mode=memory&cache=shared", testDBSeq.Add(1))
	db, err := gorm.Open(gormsqlite.Dialector{DriverName: "sqlite", DSN: dsn}, &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.FarmType{},
		&model.ProductionType{},
		&model.Farm{},
		&model.Animal{},
	))

	uploadDir := t.TempDir()
	images, err := storage.NewDiskImageStore(uploadDir)
	require.NoError(t, err)

	cfg := &config.Config{
		RunAddress: "localhost:8080",
		AuthSecret: testSecret,
		UploadDir:  uploadDir,
	}
	logger := zap.NewNop().Sugar()

	userRepo := repo.NewUserRepository(db)
	farmRepo := repo.NewFarmRepository(db)
	animalRepo := repo.NewAnimalRepository(db)
	farmTypeRepo := repo.NewFarmTypeRepository(db)
	prodTypeRepo := repo.NewProductionTypeRepository(db)

	h := handlers.NewHandler(
		service.NewUserService(userRepo, cfg.AuthSecret),
		service.NewFarmService(farmRepo, farmTypeRepo, prodTypeRepo, images),
		service.NewAnimalService(animalRepo, farmRepo),
		service.NewFarmTypeService(farmTypeRepo),
		service.NewProductionTypeService(prodTypeRepo),
		service.NewStatsService(animalRepo, farmRepo),
		logger,
		cfg,
	)

	return &testEnv{router: h.Router, db: db, uploadDir: uploadDir}
}

// authToken issues a token the router's auth middleware accepts.
func authToken(t *testing.T) string {
	t.Helper()
	token, err := auth.NewToken(testSecret, 1)
	require.NoError(t, err)
	return token
}

// doJSON sends a JSON request through the router. An empty token leaves
// the request anonymous.
func (e *testEnv) doJSON(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, rd)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rr := httptest.NewRecorder()
	e.router.ServeHTTP(rr, req)
	return rr
}

// doForm sends a multipart form through the router, attaching image as
// an "image" file part when non-nil.
func (e *testEnv) doForm(t *testing.T, method, path, token string, fields map[string]string, image []byte) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	if image != nil {
		fw, err := mw.CreateFormFile("image", "farm.png")
		require.NoError(t, err)
		_, err = fw.Write(image)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rr := httptest.NewRecorder()
	e.router.ServeHTTP(rr, req)
	return rr
}

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), v), "body: %s", rr.Body.String())
}

// pngBytes is a minimal payload that sniffs as image/png.
func pngBytes() []byte {
	return append([]byte("\x89PNG\r\n\x1a\n"), bytes.Repeat([]byte{0x01}, 32)...)
}

// seedTypes creates one farm type and one production type directly in
// the database.
func seedTypes(t *testing.T, db *gorm.DB, kind string) (*model.FarmType, *model.ProductionType) {
	t.Helper()
	ft := &model.FarmType{Name: fmt.Sprintf("farm-type-%d", testDBSeq.Add(1))}
	require.NoError(t, db.Create(ft).Error)
	pt := &model.ProductionType{Name: fmt.Sprintf("prod-type-%d", testDBSeq.Add(1)), Kind: kind}
	require.NoError(t, db.Create(pt).Error)
	return ft, pt
}

// seedFarm creates a farm with fresh types directly in the database.
func seedFarm(t *testing.T, db *gorm.DB, name, kind string) *model.Farm {
	t.Helper()
	ft, pt := seedTypes(t, db, kind)
	farm := &model.Farm{Name: name, FarmTypeID: ft.ID, ProductionTypeID: pt.ID}
	require.NoError(t, db.Create(farm).Error)
	return farm
}

func urlID(prefix string, id uint) string { return fmt.Sprintf("%s/%d", prefix, id) }

func strPtr(s string) *string { return &s }

func f64Ptr(f float64) *float64 { return &f }
