package dummyjson

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync/atomic"
	"testing"

	"github.com/SergeyKozhin/user-management-backend/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// usersServer serves total users named user<N> through GET /users.
func usersServer(t *testing.T, total int, requests *int32) *httptest.Server {
	t.Helper()

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/users", r.URL.Path)
		assert.Equal(t, selectFields, r.URL.Query().Get("select"))
		if requests != nil {
			atomic.AddInt32(requests, 1)
		}

		limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
		skip, _ := strconv.Atoi(r.URL.Query().Get("skip"))

		resp := listResponse{Total: total, Skip: skip, Limit: limit, Users: []*userDTO{}}
		for i := skip; i < skip+limit && i < total; i++ {
			resp.Users = append(resp.Users, &userDTO{
				ID:        int64(i + 1),
				FirstName: fmt.Sprintf("user%d", i+1),
				LastName:  "Doe",
				Gender:    "female",
				Email:     fmt.Sprintf("user%d@x.io", i+1),
				Phone:     "+1 555-555-5555",
				Image:     "https://img/" + strconv.Itoa(i+1),
			})
		}

		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	}))
}

func TestListUsers_AssemblesPagesInOrder(t *testing.T) {
	var requests int32
	ts := usersServer(t, 23, &requests)
	defer ts.Close()

	c := NewClient(ts.URL, WithPageSize(5), WithMaxUsers(0), WithConcurrency(3))
	users, err := c.ListUsers(context.Background())
	require.NoError(t, err)

	require.Len(t, users, 23)
	for i, u := range users {
		assert.Equal(t, int64(i+1), u.ID)
	}
	assert.Equal(t, "Female", users[0].Gender)
	assert.Equal(t, "https://img/1", users[0].ProfileImage)
	assert.Equal(t, int32(5), atomic.LoadInt32(&requests))
}

func TestListUsers_RespectsMaxUsers(t *testing.T) {
	ts := usersServer(t, 208, nil)
	defer ts.Close()

	c := NewClient(ts.URL, WithPageSize(30), WithMaxUsers(42))
	users, err := c.ListUsers(context.Background())
	require.NoError(t, err)

	require.Len(t, users, 42)
	assert.Equal(t, int64(42), users[41].ID)
}

func TestListUsers_SmallCap(t *testing.T) {
	ts := usersServer(t, 208, nil)
	defer ts.Close()

	users, err := NewClient(ts.URL, WithPageSize(30), WithMaxUsers(5)).ListUsers(context.Background())
	require.NoError(t, err)
	assert.Len(t, users, 5)
}

func TestListUsers_Empty(t *testing.T) {
	ts := usersServer(t, 0, nil)
	defer ts.Close()

	users, err := NewClient(ts.URL).ListUsers(context.Background())
	require.NoError(t, err)
	assert.Empty(t, users)
}

func TestListUsers_ServerError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down for maintenance", http.StatusServiceUnavailable)
	}))
	defer ts.Close()

	_, err := NewClient(ts.URL).ListUsers(context.Background())
	require.Error(t, err)

	var dsErr *model.DataSourceError
	require.True(t, errors.As(err, &dsErr))
	assert.Equal(t, "list users", dsErr.Op)
	assert.Contains(t, err.Error(), "HTTP 503")
}

func TestListUsers_FailingLaterPage(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("skip") != "0" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		_ = json.NewEncoder(w).Encode(listResponse{Total: 10, Users: []*userDTO{{ID: 1}, {ID: 2}}})
	}))
	defer ts.Close()

	_, err := NewClient(ts.URL, WithPageSize(2)).ListUsers(context.Background())
	var dsErr *model.DataSourceError
	assert.ErrorAs(t, err, &dsErr)
}

func TestAddUser(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/users/add", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "Ann", req["firstName"])
		assert.Equal(t, "Male", req["gender"])
		_, hasImage := req["profileImage"]
		assert.False(t, hasImage)

		req["id"] = 209
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(req)
	}))
	defer ts.Close()

	user, err := NewClient(ts.URL).AddUser(context.Background(), &model.UserCreate{
		FirstName: "Ann",
		LastName:  "Lee",
		Gender:    "Male",
		Email:     "a@b.c",
		Phone:     "+1-1234567890",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(209), user.ID)
	assert.Equal(t, "Ann", user.FirstName)
	assert.Equal(t, "a@b.c", user.Email)
	assert.Equal(t, model.PlaceholderProfileImage, user.ProfileImage)
}

func TestAddUser_Rejected(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"message":"bad"}`))
	}))
	defer ts.Close()

	_, err := NewClient(ts.URL).AddUser(context.Background(), &model.UserCreate{FirstName: "Ann"})

	var dsErr *model.DataSourceError
	require.ErrorAs(t, err, &dsErr)
	assert.Equal(t, "add user", dsErr.Op)
}

func TestMapToUser(t *testing.T) {
	tests := []struct {
		name      string
		dto       userDTO
		wantImage string
		wantGen   string
	}{
		{"profile image wins", userDTO{Image: "a", ProfileImage: "b", Gender: "male"}, "b", "Male"},
		{"image fallback", userDTO{Image: "a", Gender: "FEMALE"}, "a", "Female"},
		{"placeholder", userDTO{Gender: "Other"}, model.PlaceholderProfileImage, "Other"},
		{"unknown gender kept", userDTO{Gender: "n/a"}, model.PlaceholderProfileImage, "n/a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dto := tt.dto
			u := mapToUser(&dto)
			assert.Equal(t, tt.wantImage, u.ProfileImage)
			assert.Equal(t, tt.wantGen, u.Gender)
		})
	}
}
