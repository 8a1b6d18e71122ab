package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvelope(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name   string
		write  func(c *gin.Context)
		status int
		want   string
	}{
		{
			name:   "success",
			write:  func(c *gin.Context) { Success(c, http.StatusOK, gin.H{"n": 1}) },
			status: http.StatusOK,
			want:   `{"success":true,"data":{"n":1}}`,
		},
		{
			name:   "error",
			write:  func(c *gin.Context) { Error(c, http.StatusForbidden, "FORBIDDEN_BRANCH", "no") },
			status: http.StatusForbidden,
			want:   `{"success":false,"error":{"code":"FORBIDDEN_BRANCH","message":"no"}}`,
		},
		{
			name: "error with details",
			write: func(c *gin.Context) {
				ErrorWithDetails(c, http.StatusUnprocessableEntity, "ROW_VALIDATION_FAILED", "bad", gin.H{"row": 2})
			},
			status: http.StatusUnprocessableEntity,
			want:   `{"success":false,"error":{"code":"ROW_VALIDATION_FAILED","message":"bad","details":{"row":2}}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			tt.write(c)

			assert.Equal(t, tt.status, w.Code)
			assert.JSONEq(t, tt.want, w.Body.String())

			var env Envelope
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
			assert.Equal(t, tt.status < 400, env.Success)
		})
	}
}
