package http_voting

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	http_common "github.com/ampeli/wineroulette/internal/delivery/http/common"
)

func newTestRouter(c *Controller) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	c.RegisterRoutes(engine.Group("/api/v1"))
	return engine
}

func TestVoteRejectsMalformedBody(t *testing.T) {
	t.Parallel()

	// A request failing validation never reaches the usecases.
	router := newTestRouter(New(nil, nil, nil))

	testCases := []struct {
		name string
		body string
	}{
		{name: "item id is not a uuid", body: `{"item_id":"not-a-uuid","upvote":true}`},
		{name: "item id missing", body: `{"upvote":true}`},
		{name: "upvote missing", body: `{"item_id":"` + uuid.NewString() + `"}`},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodPost,
				"/api/v1/sessions/"+uuid.NewString()+"/votes",
				strings.NewReader(tc.body))
			req.Header.Set(http_common.UserTokenHeader, uuid.NewString())
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}
