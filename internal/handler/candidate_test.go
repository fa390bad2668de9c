package handler

import (
	"net/http"
	"testing"

	"hr-admin/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createCandidate(t *testing.T, r *gin.Engine, token string) model.Candidate {
	t.Helper()
	w := doRequest(t, r, http.MethodPost, "/api/candidate", reqOpts{token: token, body: gin.H{
		"name":       "Ada",
		"email":      "ada@example.com",
		"phone":      "555-0101",
		"position":   "Backend Engineer",
		"experience": "4 years",
		"resume":     "https://files.example.com/ada.pdf",
	}})
	require.Equal(t, http.StatusCreated, w.Code)
	var c model.Candidate
	decodeBody(t, w, &c)
	return c
}

func TestCandidateDefaultStatus(t *testing.T) {
	r, _, tokens := newTestRouter(t)
	c := createCandidate(t, r, userToken(t, tokens))
	assert.Equal(t, model.CandidateStatusNew, c.Status)
}

func TestCandidateChangeStatus(t *testing.T) {
	r, _, tokens := newTestRouter(t)
	user := userToken(t, tokens)
	admin := adminToken(t, tokens)

	c := createCandidate(t, r, user)

	w := doRequest(t, r, http.MethodPut, "/api/candidate/"+itoa(c.ID)+"/status", reqOpts{token: admin, body: gin.H{
		"status": model.CandidateStatusSelected,
	}})
	require.Equal(t, http.StatusOK, w.Code)
	var updated model.Candidate
	decodeBody(t, w, &updated)
	assert.Equal(t, model.CandidateStatusSelected, updated.Status)
}

func TestCandidateChangeStatusMissingBody(t *testing.T) {
	r, _, tokens := newTestRouter(t)
	user := userToken(t, tokens)
	admin := adminToken(t, tokens)

	c := createCandidate(t, r, user)

	w := doRequest(t, r, http.MethodPut, "/api/candidate/"+itoa(c.ID)+"/status", reqOpts{token: admin, body: gin.H{}})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCandidateChangeStatusNotFound(t *testing.T) {
	r, _, tokens := newTestRouter(t)
	admin := adminToken(t, tokens)

	w := doRequest(t, r, http.MethodPut, "/api/candidate/999/status", reqOpts{token: admin, body: gin.H{
		"status": model.CandidateStatusRejected,
	}})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCandidateStatusChangeIsAdminOnly(t *testing.T) {
	r, _, tokens := newTestRouter(t)
	user := userToken(t, tokens)

	c := createCandidate(t, r, user)

	w := doRequest(t, r, http.MethodPut, "/api/candidate/"+itoa(c.ID)+"/status", reqOpts{token: user, body: gin.H{
		"status": model.CandidateStatusSelected,
	}})
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestCandidatePatchKeepsOtherFields(t *testing.T) {
	r, _, tokens := newTestRouter(t)
	user := userToken(t, tokens)

	c := createCandidate(t, r, user)

	w := doRequest(t, r, http.MethodPut, "/api/candidate/"+itoa(c.ID), reqOpts{token: user, body: gin.H{
		"phone": "555-9999",
	}})
	require.Equal(t, http.StatusOK, w.Code)
	var updated model.Candidate
	decodeBody(t, w, &updated)
	assert.Equal(t, "555-9999", updated.Phone)
	assert.Equal(t, "Ada", updated.Name)
	assert.Equal(t, "4 years", updated.Experience)
}
