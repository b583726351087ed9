package request

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func bindBody(t *testing.T, body string) error {
	t.Helper()
	gin.SetMode(gin.TestMode)
	RegisterJSONFieldNames()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(body))
	c.Request.Header.Set("Content-Type", "application/json")

	var req BudgetEstimateRequest
	return c.ShouldBindJSON(&req)
}

func TestDescribeBindError(t *testing.T) {
	cases := []struct {
		name  string
		body  string
		field string
	}{
		{name: "missing dimensions", body: `{"roomType":"OTHER"}`, field: "dimensions"},
		{name: "missing room type", body: `{"dimensions":{"length":1,"width":1}}`, field: "roomType"},
		{name: "material without type", body: `{"dimensions":{"length":1,"width":1},"roomType":"OTHER","materials":[{"coverage":1}]}`, field: "materials[0].type"},
		{name: "wrong type", body: `{"dimensions":{"length":"ten","width":1},"roomType":"OTHER"}`, field: "dimensions.length"},
		{name: "malformed", body: `{`, field: ""},
		{name: "empty", body: ``, field: ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := bindBody(t, tc.body)
			if err == nil {
				t.Fatalf("expected bind error")
			}
			fe := DescribeBindError(err)
			if fe.Field != tc.field {
				t.Fatalf("expected field %q, got %q (%s)", tc.field, fe.Field, fe.Message)
			}
			if fe.Message == "" {
				t.Fatalf("expected message")
			}
		})
	}

	if err := bindBody(t, `{"dimensions":{"length":1,"width":1},"roomType":"OTHER"}`); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
