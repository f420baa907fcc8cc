package httperr

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestIsBusiness(t *testing.T) {
	err := ErrBusiness("shop_name_taken", "shop_name")

	assert.True(t, IsBusiness(err, "shop_name_taken"))
	assert.False(t, IsBusiness(err, "slot_conflict"))
	assert.False(t, IsBusiness(errors.New("boom"), "shop_name_taken"))
}

func TestIsBusiness_Wrapped(t *testing.T) {
	err := ErrBusiness("slot_conflict", "start_time")
	wrapped := errors.Join(errors.New("outer"), err)

	assert.True(t, IsBusiness(wrapped, "slot_conflict"))
}

func TestWriteBusiness_FieldScopedPayload(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	WriteBusiness(c, http.StatusConflict, ErrBusiness("slot_conflict", "start_time"), "That time slot is already booked.")

	require.Equal(t, http.StatusConflict, w.Code)

	var resp HTTPError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "slot_conflict", resp.Code)
	assert.Equal(t, "start_time", resp.Field)
	assert.Equal(t, "That time slot is already booked.", resp.Message)
}

func TestWriteBusiness_NonBusinessErrorIsInternal(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	WriteBusiness(c, http.StatusConflict, errors.New("disk on fire"), "ignored")

	require.Equal(t, http.StatusInternalServerError, w.Code)

	var resp HTTPError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "internal_error", resp.Code)
	assert.Empty(t, resp.Field)
}
