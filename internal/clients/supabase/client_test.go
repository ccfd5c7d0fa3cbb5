package supabase

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockHTTPClient struct {
	mock.Mock
}

func (m *mockHTTPClient) Do(req *http.Request) (*http.Response, error) {
	args := m.Called(req)
	return args.Get(0).(*http.Response), args.Error(1)
}

func responseFromFile(statusCode int, file string) (*http.Response, error) {
	body, err := os.ReadFile("testdata/" + file)

	return &http.Response{
		StatusCode: statusCode,
		Body:       io.NopCloser(bytes.NewBuffer(body)),
	}, err
}

type jobRow struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Location  string    `json:"location"`
	JobType   string    `json:"job_type"`
	CreatedAt time.Time `json:"created_at"`
	UserID    string    `json:"user_id"`
}

func Test_Select_BuildsOrderedQueryAndDecodesRows(t *testing.T) {

	assert := assert.New(t)

	mockClient := &mockHTTPClient{}
	mockClient.On("Do", mock.MatchedBy(func(req *http.Request) bool {
		return req.URL.String() == "https://project.supabase.co/rest/v1/jobs?order=created_at.desc&select=%2A" &&
			req.Header.Get("apikey") == "anon-key" &&
			req.Header.Get("Authorization") == "Bearer anon-key"
	})).Return(responseFromFile(200, "list_jobs.json"))

	client := NewClient("https://project.supabase.co", "anon-key")
	client.SetHTTPClient(mockClient)

	var rows []jobRow
	err := client.Select(context.Background(), "", "jobs", Query{OrderBy: "created_at", Descending: true}, &rows)
	assert.NoError(err)

	assert.Len(rows, 2)
	assert.Equal(int64(42), rows[0].ID)
	assert.Equal("Senior Backend Engineer", rows[0].Title)
	assert.Equal(int64(41), rows[1].ID)
}

func Test_Select_AddsEqualityFilterAndUserToken(t *testing.T) {

	assert := assert.New(t)

	mockClient := &mockHTTPClient{}
	mockClient.On("Do", mock.MatchedBy(func(req *http.Request) bool {
		return req.URL.String() == "https://project.supabase.co/rest/v1/jobs?order=created_at.desc&select=%2A&user_id=eq.owner-1" &&
			req.Header.Get("Authorization") == "Bearer user-token"
	})).Return(responseFromFile(200, "list_jobs.json"))

	client := NewClient("https://project.supabase.co", "anon-key")
	client.SetHTTPClient(mockClient)

	var rows []jobRow
	err := client.Select(context.Background(), "user-token", "jobs",
		Query{Eq: map[string]string{"user_id": "owner-1"}, OrderBy: "created_at", Descending: true}, &rows)
	assert.NoError(err)
	assert.Len(rows, 2)
}

func Test_SelectSingle_DecodesOneRow(t *testing.T) {

	assert := assert.New(t)

	mockClient := &mockHTTPClient{}
	mockClient.On("Do", mock.MatchedBy(func(req *http.Request) bool {
		return req.URL.String() == "https://project.supabase.co/rest/v1/jobs?id=eq.42&select=%2A" &&
			req.Header.Get("Accept") == "application/vnd.pgrst.object+json"
	})).Return(responseFromFile(200, "get_job.json"))

	client := NewClient("https://project.supabase.co", "anon-key")
	client.SetHTTPClient(mockClient)

	var row jobRow
	err := client.SelectSingle(context.Background(), "", "jobs", Query{Eq: map[string]string{"id": "42"}}, &row)
	assert.NoError(err)
	assert.Equal(int64(42), row.ID)
	assert.Equal("Remote", row.Location)
}

func Test_SelectSingle_MapsNoRowsCodeToSentinel(t *testing.T) {

	assert := assert.New(t)

	mockClient := &mockHTTPClient{}
	mockClient.On("Do", mock.Anything).Return(responseFromFile(406, "no_rows_error.json"))

	client := NewClient("https://project.supabase.co", "anon-key")
	client.SetHTTPClient(mockClient)

	var row jobRow
	err := client.SelectSingle(context.Background(), "", "jobs", Query{Eq: map[string]string{"id": "9999"}}, &row)
	assert.ErrorIs(err, ErrNoRows)
}

func Test_Insert_SendsRepresentationPreferHeader(t *testing.T) {

	assert := assert.New(t)

	mockClient := &mockHTTPClient{}
	mockClient.On("Do", mock.MatchedBy(func(req *http.Request) bool {
		return req.Method == http.MethodPost &&
			req.URL.String() == "https://project.supabase.co/rest/v1/jobs" &&
			req.Header.Get("Prefer") == "return=representation" &&
			req.Header.Get("Content-Type") == "application/json"
	})).Return(responseFromFile(201, "list_jobs.json"))

	client := NewClient("https://project.supabase.co", "anon-key")
	client.SetHTTPClient(mockClient)

	var rows []jobRow
	err := client.Insert(context.Background(), "user-token", "jobs", map[string]string{"title": "Engineer"}, &rows)
	assert.NoError(err)
	assert.Len(rows, 2)
}

func Test_Update_PatchesRowsMatchingFilter(t *testing.T) {

	assert := assert.New(t)

	mockClient := &mockHTTPClient{}
	mockClient.On("Do", mock.MatchedBy(func(req *http.Request) bool {
		return req.Method == http.MethodPatch &&
			req.URL.String() == "https://project.supabase.co/rest/v1/jobs?id=eq.42"
	})).Return(&http.Response{StatusCode: 204, Body: io.NopCloser(bytes.NewBuffer(nil))}, nil)

	client := NewClient("https://project.supabase.co", "anon-key")
	client.SetHTTPClient(mockClient)

	err := client.Update(context.Background(), "user-token", "jobs",
		Query{Eq: map[string]string{"id": "42"}}, map[string]string{"title": "Staff Engineer"})
	assert.NoError(err)
}

func Test_Delete_RemovesRowsMatchingFilter(t *testing.T) {

	assert := assert.New(t)

	mockClient := &mockHTTPClient{}
	mockClient.On("Do", mock.MatchedBy(func(req *http.Request) bool {
		return req.Method == http.MethodDelete &&
			req.URL.String() == "https://project.supabase.co/rest/v1/jobs?id=eq.42"
	})).Return(&http.Response{StatusCode: 204, Body: io.NopCloser(bytes.NewBuffer(nil))}, nil)

	client := NewClient("https://project.supabase.co", "anon-key")
	client.SetHTTPClient(mockClient)

	err := client.Delete(context.Background(), "user-token", "jobs", Query{Eq: map[string]string{"id": "42"}})
	assert.NoError(err)
}

func Test_SignInWithPassword_ReturnsSession(t *testing.T) {

	assert := assert.New(t)

	mockClient := &mockHTTPClient{}
	mockClient.On("Do", mock.MatchedBy(func(req *http.Request) bool {
		return req.Method == http.MethodPost &&
			req.URL.String() == "https://project.supabase.co/auth/v1/token?grant_type=password"
	})).Return(responseFromFile(200, "sign_in.json"))

	client := NewClient("https://project.supabase.co", "anon-key")
	client.SetHTTPClient(mockClient)

	session, err := client.SignInWithPassword(context.Background(), "dev@example.com", "secret")
	assert.NoError(err)
	assert.Equal("header.payload.signature", session.AccessToken)
	assert.Equal("dev@example.com", session.User.Email)
	assert.Equal(3600, session.ExpiresIn)
}

func Test_GetUser_ResolvesTokenToIdentity(t *testing.T) {

	assert := assert.New(t)

	mockClient := &mockHTTPClient{}
	mockClient.On("Do", mock.MatchedBy(func(req *http.Request) bool {
		return req.URL.String() == "https://project.supabase.co/auth/v1/user" &&
			req.Header.Get("Authorization") == "Bearer user-token"
	})).Return(responseFromFile(200, "get_user.json"))

	client := NewClient("https://project.supabase.co", "anon-key")
	client.SetHTTPClient(mockClient)

	user, err := client.GetUser(context.Background(), "user-token")
	assert.NoError(err)
	assert.Equal("dev@example.com", user.Email)
}

func Test_GetUser_ExpiredTokenIsAuthFailure(t *testing.T) {

	assert := assert.New(t)

	mockClient := &mockHTTPClient{}
	mockClient.On("Do", mock.Anything).Return(&http.Response{
		StatusCode: 401,
		Body:       io.NopCloser(bytes.NewBufferString(`{"code":401,"error_code":"bad_jwt","msg":"invalid JWT"}`)),
	}, nil)

	client := NewClient("https://project.supabase.co", "anon-key")
	client.SetHTTPClient(mockClient)

	_, err := client.GetUser(context.Background(), "stale-token")
	assert.Error(err)

	var apiErr *APIError
	assert.ErrorAs(err, &apiErr)
	assert.True(apiErr.IsAuthFailure())
	assert.Equal("bad_jwt", apiErr.Code)
}
