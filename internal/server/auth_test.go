package server

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	authdomain "github.com/praneeth8555/dairyadmin/internal/auth/domain"
)

type fakeAuthService struct {
	loginCalls  int
	verifyCalls int
	verifyErr   error
}

func (f *fakeAuthService) Register(ctx context.Context, req authdomain.Credentials) error {
	_ = ctx
	_ = req
	return nil
}

func (f *fakeAuthService) Login(ctx context.Context, req authdomain.Credentials) (*authdomain.TokenResponse, error) {
	f.loginCalls++
	_ = ctx
	if req.Password != "letmein12" {
		return nil, authdomain.ErrInvalidCredentials
	}
	return &authdomain.TokenResponse{Token: "session-token"}, nil
}

func (f *fakeAuthService) VerifyToken(token string) (string, error) {
	f.verifyCalls++
	if f.verifyErr != nil {
		return "", f.verifyErr
	}
	_ = token
	return "admin", nil
}

func TestLoginHandlerReturnsToken(t *testing.T) {
	gin.SetMode(gin.TestMode)

	authSvc := &fakeAuthService{}
	srv := &Server{authSvc: authSvc}

	router := gin.New()
	router.Use(ErrorHandlingMiddleware())
	router.POST("/admin/login", srv.Login)

	req := httptest.NewRequest(http.MethodPost, "/admin/login", bytes.NewBufferString(`{"Username":"admin","Password":"letmein12"}`))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	if authSvc.loginCalls != 1 {
		t.Fatalf("expected one login call, got %d", authSvc.loginCalls)
	}
	if !bytes.Contains(resp.Body.Bytes(), []byte("session-token")) {
		t.Fatalf("expected token in response, got %s", resp.Body.String())
	}
}

func TestLoginHandlerRejectsBadPassword(t *testing.T) {
	gin.SetMode(gin.TestMode)

	srv := &Server{authSvc: &fakeAuthService{}}

	router := gin.New()
	router.Use(ErrorHandlingMiddleware())
	router.POST("/admin/login", srv.Login)

	req := httptest.NewRequest(http.MethodPost, "/admin/login", bytes.NewBufferString(`{"Username":"admin","Password":"wrong-pass"}`))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", resp.Code)
	}
}

func TestAuthRequiredRejectsMissingToken(t *testing.T) {
	gin.SetMode(gin.TestMode)

	authSvc := &fakeAuthService{}
	srv := &Server{authSvc: authSvc}

	router := gin.New()
	router.Use(ErrorHandlingMiddleware())
	router.GET("/apartments", srv.AuthRequired(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"data": []string{}})
	})

	req := httptest.NewRequest(http.MethodGet, "/apartments", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", resp.Code)
	}
	if authSvc.verifyCalls != 0 {
		t.Fatal("expected token verification to be skipped without a header")
	}
}

func TestAuthRequiredRejectsInvalidToken(t *testing.T) {
	gin.SetMode(gin.TestMode)

	srv := &Server{authSvc: &fakeAuthService{verifyErr: authdomain.ErrInvalidToken}}

	router := gin.New()
	router.Use(ErrorHandlingMiddleware())
	router.GET("/apartments", srv.AuthRequired(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"data": []string{}})
	})

	req := httptest.NewRequest(http.MethodGet, "/apartments", nil)
	req.Header.Set("Authorization", "Bearer stale-token")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", resp.Code)
	}
}

func TestAuthRequiredPassesValidToken(t *testing.T) {
	gin.SetMode(gin.TestMode)

	authSvc := &fakeAuthService{}
	srv := &Server{authSvc: authSvc}

	var seenAdmin string
	router := gin.New()
	router.Use(ErrorHandlingMiddleware())
	router.GET("/apartments", srv.AuthRequired(), func(c *gin.Context) {
		seenAdmin = c.GetString("admin_username")
		c.JSON(http.StatusOK, gin.H{"data": []string{}})
	})

	req := httptest.NewRequest(http.MethodGet, "/apartments", nil)
	req.Header.Set("Authorization", "Bearer session-token")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	if authSvc.verifyCalls != 1 {
		t.Fatalf("expected one verify call, got %d", authSvc.verifyCalls)
	}
	if seenAdmin != "admin" {
		t.Fatalf("expected admin_username to be set, got %q", seenAdmin)
	}
}
