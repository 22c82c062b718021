package guidelines

import (
	"encoding/json"
	"net/http"
	"testing"

	"api/models"
	"api/testutil"

	"github.com/gin-gonic/gin"
)

func setupRouter(t *testing.T) (*gin.Engine, *http.Cookie) {
	t.Helper()

	testutil.SetupTestDB(t)
	admin := testutil.CreateAdmin(t, "admin@example.com", "secret")

	r := gin.New()
	RegisterRoutes(r.Group("/api/v1"))
	return r, testutil.SessionCookie(t, admin.ID)
}

func listGuidelines(t *testing.T, r *gin.Engine) []models.Guideline {
	t.Helper()

	w := testutil.PerformRequest(r, "GET", "/api/v1/guidelines", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	var listed []models.Guideline
	if err := json.Unmarshal(w.Body.Bytes(), &listed); err != nil {
		t.Fatalf("Failed to decode list: %v", err)
	}
	return listed
}

func TestReplaceGuidelines(t *testing.T) {
	r, cookie := setupRouter(t)

	body := map[string]interface{}{"guidelines": []string{"First rule", "Second rule", "Third rule"}}
	w := testutil.PerformRequest(r, "POST", "/api/v1/guidelines", body, cookie)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Success bool `json:"success"`
	}
	json.Unmarshal(w.Body.Bytes(), &resp)
	if !resp.Success {
		t.Error("Expected success:true")
	}

	listed := listGuidelines(t, r)
	if len(listed) != 3 {
		t.Fatalf("Expected 3 guidelines, got %d", len(listed))
	}
	for i, g := range listed {
		if g.DisplayOrder != i+1 {
			t.Errorf("Expected display_order %d at position %d, got %d", i+1, i, g.DisplayOrder)
		}
		if !g.IsActive {
			t.Errorf("Expected guideline %d to be active", g.ID)
		}
	}
	if listed[0].Content != "First rule" || listed[2].Content != "Third rule" {
		t.Errorf("Unexpected ordering: %+v", listed)
	}
}

func TestReplaceGuidelines_IdempotentUnderRepeat(t *testing.T) {
	r, cookie := setupRouter(t)

	body := map[string]interface{}{"guidelines": []string{"Alpha", "Beta"}}
	for i := 0; i < 2; i++ {
		w := testutil.PerformRequest(r, "POST", "/api/v1/guidelines", body, cookie)
		if w.Code != http.StatusOK {
			t.Fatalf("Submission %d failed: %d", i+1, w.Code)
		}
	}

	listed := listGuidelines(t, r)
	if len(listed) != 2 {
		t.Fatalf("Expected 2 guidelines after repeated submission, got %d", len(listed))
	}
	if listed[0].Content != "Alpha" || listed[1].Content != "Beta" {
		t.Errorf("Unexpected contents after repeat: %+v", listed)
	}
}

func TestReplaceGuidelines_ReorderAndRemove(t *testing.T) {
	r, cookie := setupRouter(t)

	first := map[string]interface{}{"guidelines": []string{"A", "B", "C"}}
	testutil.PerformRequest(r, "POST", "/api/v1/guidelines", first, cookie)

	// The full desired state replaces membership and order wholesale
	second := map[string]interface{}{"guidelines": []string{"C", "A"}}
	w := testutil.PerformRequest(r, "POST", "/api/v1/guidelines", second, cookie)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	listed := listGuidelines(t, r)
	if len(listed) != 2 || listed[0].Content != "C" || listed[1].Content != "A" {
		t.Errorf("Expected exactly [C A], got %+v", listed)
	}
}

func TestReplaceGuidelines_EmptyListValid(t *testing.T) {
	r, cookie := setupRouter(t)

	first := map[string]interface{}{"guidelines": []string{"A"}}
	testutil.PerformRequest(r, "POST", "/api/v1/guidelines", first, cookie)

	empty := map[string]interface{}{"guidelines": []string{}}
	w := testutil.PerformRequest(r, "POST", "/api/v1/guidelines", empty, cookie)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200 for empty list, got %d", w.Code)
	}

	listed := listGuidelines(t, r)
	if len(listed) != 0 {
		t.Errorf("Expected zero active guidelines, got %d", len(listed))
	}
}

func TestReplaceGuidelines_RejectsNonList(t *testing.T) {
	r, cookie := setupRouter(t)

	testCases := []struct {
		name string
		body interface{}
	}{
		{"MissingField", map[string]interface{}{}},
		{"StringInstead", map[string]interface{}{"guidelines": "not a list"}},
		{"NumberInstead", map[string]interface{}{"guidelines": 7}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := testutil.PerformRequest(r, "POST", "/api/v1/guidelines", tc.body, cookie)
			if w.Code != http.StatusBadRequest {
				t.Errorf("Expected status 400, got %d", w.Code)
			}
		})
	}
}

func TestReplaceGuidelines_RequiresSession(t *testing.T) {
	r, _ := setupRouter(t)

	body := map[string]interface{}{"guidelines": []string{"A"}}
	w := testutil.PerformRequest(r, "POST", "/api/v1/guidelines", body)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("Expected status 401 without session, got %d", w.Code)
	}
}
