package mockapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/flowpms/flowpms-go/pkg/auth"
	"github.com/flowpms/flowpms-go/pkg/config"
	"github.com/flowpms/flowpms-go/pkg/enums"
	"github.com/flowpms/flowpms-go/pkg/logger"
	"github.com/flowpms/flowpms-go/pkg/models"
	"github.com/flowpms/flowpms-go/pkg/types"
)

func testConfig() config.MockConfig {
	return config.MockConfig{
		Port:      "0",
		JWTSecret: "test-secret",
		JWTIssuer: "flowpms-test",
	}
}

func newTestServer(t *testing.T) (*httptest.Server, *Repo) {
	t.Helper()
	logg := logger.New(logger.Options{ServiceName: "test"})
	repo := NewRepo()
	server := httptest.NewServer(NewRouter(testConfig(), logg, repo, nil))
	t.Cleanup(server.Close)
	return server, repo
}

func getEnvelope(t *testing.T, url string, out any) *types.Envelope {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 but got %d", resp.StatusCode)
	}

	var env types.Envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatalf("decoding envelope: %v", err)
	}
	if !env.Success {
		t.Fatalf("expected a success envelope, got message %q", env.Message)
	}
	if out != nil {
		if err := json.Unmarshal(env.Data, out); err != nil {
			t.Fatalf("decoding data: %v", err)
		}
	}
	return &env
}

func TestInitReturnsDefaultUser(t *testing.T) {
	server, repo := newTestServer(t)

	resp, err := http.Post(server.URL+"/api/users/init", "application/json", nil)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	var env types.Envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatalf("decoding envelope: %v", err)
	}
	var user models.User
	if err := json.Unmarshal(env.Data, &user); err != nil {
		t.Fatalf("decoding user: %v", err)
	}
	if user.ID != repo.DefaultUser().ID {
		t.Fatalf("expected the seeded default user")
	}
}

func TestUnifiedSearchTagsOwnProjects(t *testing.T) {
	server, _ := newTestServer(t)

	var hits []models.SearchResult
	getEnvelope(t, server.URL+"/api/search/?q=feed", &hits)
	if len(hits) == 0 {
		t.Fatalf("expected hits for the seeded feed project")
	}

	foundMyProject := false
	for _, hit := range hits {
		if hit.Type == enums.ResultTypeMyProject {
			foundMyProject = true
		}
	}
	if !foundMyProject {
		t.Fatalf("default user's projects should be tagged my_project, got %v", hits)
	}
}

func TestUnifiedSearchRequiresQuery(t *testing.T) {
	server, _ := newTestServer(t)

	resp, err := http.Get(server.URL + "/api/search/")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 but got %d", resp.StatusCode)
	}

	var env types.Envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatalf("decoding envelope: %v", err)
	}
	if env.Success {
		t.Fatalf("error responses must not be success envelopes")
	}
}

func TestSearchCountsFeedPopular(t *testing.T) {
	server, _ := newTestServer(t)

	for i := 0; i < 3; i++ {
		getEnvelope(t, server.URL+"/api/search/?q=feed", nil)
	}
	getEnvelope(t, server.URL+"/api/search/?q=roadmap", nil)

	var popular []models.QueryCount
	getEnvelope(t, server.URL+"/api/search/popular", &popular)
	if len(popular) < 2 {
		t.Fatalf("expected both queries in popular, got %v", popular)
	}
	if popular[0].Query != "feed" || popular[0].Count != 3 {
		t.Fatalf("expected feed on top with 3 searches, got %v", popular[0])
	}
}

func TestAuthLoginMintsVerifiableToken(t *testing.T) {
	server, _ := newTestServer(t)

	body := bytes.NewBufferString(`{"identifier":"jordan"}`)
	resp, err := http.Post(server.URL+"/api/users/auth", "application/json", body)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	var env types.Envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatalf("decoding envelope: %v", err)
	}
	if env.Token == "" {
		t.Fatalf("login should return a token")
	}

	claims, err := auth.ParseToken(testConfig(), env.Token)
	if err != nil {
		t.Fatalf("minted token should verify: %v", err)
	}
	if claims.Username != "jordan" {
		t.Fatalf("unexpected claims %+v", claims)
	}
}

func TestAuthLoginUnknownUser(t *testing.T) {
	server, _ := newTestServer(t)

	body := bytes.NewBufferString(`{"identifier":"nobody"}`)
	resp, err := http.Post(server.URL+"/api/users/auth", "application/json", body)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 but got %d", resp.StatusCode)
	}
}

func TestProjectUpdateForbiddenForNonOwner(t *testing.T) {
	server, repo := newTestServer(t)

	// sam owns "Design assets"; mina is not an admin.
	sam, err := repo.UserByUsername("sam")
	if err != nil {
		t.Fatalf("seed user missing: %v", err)
	}
	mina, err := repo.UserByUsername("mina")
	if err != nil {
		t.Fatalf("seed user missing: %v", err)
	}
	var target models.Project
	for _, p := range repo.ProjectsByUser(sam.ID) {
		target = p
	}

	input, _ := json.Marshal(models.ProjectInput{Title: "Taken over", Category: enums.ProjectCategoryFile})
	url := fmt.Sprintf("%s/api/projects/%s?userId=%s", server.URL, target.ID, mina.ID)
	req, _ := http.NewRequest(http.MethodPut, url, bytes.NewReader(input))
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("expected 403 but got %d", resp.StatusCode)
	}
}

func TestProjectCreateAndFetch(t *testing.T) {
	server, repo := newTestServer(t)
	owner := repo.DefaultUser()

	input, _ := json.Marshal(models.ProjectInput{
		Title:    "Brand refresh",
		Category: enums.ProjectCategoryFile,
		IsPublic: true,
	})
	url := fmt.Sprintf("%s/api/projects/?ownerId=%s", server.URL, owner.ID)
	resp, err := http.Post(url, "application/json", bytes.NewReader(input))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	var env types.Envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatalf("decoding envelope: %v", err)
	}
	var created models.Project
	if err := json.Unmarshal(env.Data, &created); err != nil {
		t.Fatalf("decoding project: %v", err)
	}
	if created.Status != enums.ProjectStatusInProgress {
		t.Fatalf("empty status should default to in_progress, got %s", created.Status)
	}

	var fetched models.Project
	getEnvelope(t, server.URL+"/api/projects/"+created.ID.String(), &fetched)
	if fetched.Title != "Brand refresh" {
		t.Fatalf("expected the created project back, got %+v", fetched)
	}
}

func TestSuggestCompletesSeededTitles(t *testing.T) {
	server, _ := newTestServer(t)

	var suggestions []string
	getEnvelope(t, server.URL+"/api/search/suggest?q=te", &suggestions)
	found := false
	for _, s := range suggestions {
		if s == "Team feed" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected the seeded title suggested, got %v", suggestions)
	}
}
