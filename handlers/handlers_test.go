package handlers

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"linkup/config"
	"linkup/middleware"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	config.Cfg = &config.Config{
		JWTSecret: "test-secret",
		UploadDir: t.TempDir(),
	}

	d := newMemData()
	h := New(&memUserStore{d}, &memFriendStore{d}, &memMessageStore{d})

	r := gin.New()
	r.POST("/register", h.Register)
	r.POST("/login", h.Login)
	r.GET("/me", middleware.AuthMiddleware(), h.Me)
	r.GET("/users/:userId", h.ListUsers)
	r.GET("/user/:userId", h.GetUser)
	r.POST("/friend-request", h.SendFriendRequest)
	r.GET("/friend-request/sent/:userId", h.GetSentFriendRequests)
	r.GET("/friend-request/:userId", h.GetFriendRequests)
	r.POST("/friend-request/accept", h.AcceptFriendRequest)
	r.GET("/accepted-friends/:userId", h.GetAcceptedFriends)
	r.GET("/friends/:userId", h.GetFriendIDs)
	r.POST("/messages", h.SendMessage)
	r.GET("/messages/:senderId/:recepientId", h.GetThread)
	r.POST("/deletedMessages", h.DeleteMessages)
	r.GET("/files/:filename", h.ServeFile)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), out); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
}

func registerUser(t *testing.T, r *gin.Engine, name, email, password string) string {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/register", gin.H{
		"name": name, "email": email, "password": password,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("register %s: status = %d, body = %s", email, w.Code, w.Body.String())
	}
	var resp struct {
		ID string `json:"id"`
	}
	decodeBody(t, w, &resp)
	if resp.ID == "" {
		t.Fatalf("register %s: no id in response %s", email, w.Body.String())
	}
	return resp.ID
}

func loginUser(t *testing.T, r *gin.Engine, email, password string) string {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/login", gin.H{"email": email, "password": password})
	if w.Code != http.StatusOK {
		t.Fatalf("login %s: status = %d, body = %s", email, w.Code, w.Body.String())
	}
	var resp struct {
		Token string `json:"token"`
	}
	decodeBody(t, w, &resp)
	if resp.Token == "" {
		t.Fatalf("login %s: no token in response", email)
	}
	return resp.Token
}

func sendFriendRequest(t *testing.T, r *gin.Engine, fromID, toID string) *httptest.ResponseRecorder {
	t.Helper()
	return doJSON(t, r, http.MethodPost, "/friend-request", gin.H{
		"currentUserId": fromID, "selectedUserId": toID,
	})
}

func acceptFriendRequest(t *testing.T, r *gin.Engine, senderID, recepientID string) *httptest.ResponseRecorder {
	t.Helper()
	return doJSON(t, r, http.MethodPost, "/friend-request/accept", gin.H{
		"senderId": senderID, "recepientId": recepientID,
	})
}

type profile struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Image string `json:"image"`
}

func getProfiles(t *testing.T, r *gin.Engine, path string) []profile {
	t.Helper()
	w := doJSON(t, r, http.MethodGet, path, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("GET %s: status = %d, body = %s", path, w.Code, w.Body.String())
	}
	var profiles []profile
	decodeBody(t, w, &profiles)
	return profiles
}

func sendMultipartMessage(t *testing.T, r *gin.Engine, fields map[string]string, fileContent []byte, fileName string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := mw.WriteField(k, v); err != nil {
			t.Fatalf("write field %s: %v", k, err)
		}
	}
	if fileContent != nil {
		fw, err := mw.CreateFormFile("imageFile", fileName)
		if err != nil {
			t.Fatalf("create form file: %v", err)
		}
		if _, err := fw.Write(fileContent); err != nil {
			t.Fatalf("write file: %v", err)
		}
	}
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/messages", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
