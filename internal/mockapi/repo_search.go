package mockapi

import (
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/flowpms/flowpms-go/pkg/enums"
	"github.com/flowpms/flowpms-go/pkg/models"
)

// Search runs the unified search across projects, menu entries, users,
// status messages, and blog posts. Projects owned by the default user are
// tagged my_project so the client groups them separately. Every call counts
// toward the popular-query figures.
func (r *Repo) Search(query string) []models.SearchResult {
	needle := strings.ToLower(strings.TrimSpace(query))
	if needle == "" {
		return nil
	}
	r.recordSearch(needle)

	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []models.SearchResult
	for _, p := range r.projects {
		if !containsFold(p.Title, needle) && !containsFold(p.Description, needle) {
			continue
		}
		resultType := enums.ResultTypeProject
		if p.OwnerID == r.defaultUser {
			resultType = enums.ResultTypeMyProject
		}
		out = append(out, models.SearchResult{
			Type:        resultType,
			Title:       p.Title,
			Description: p.Description,
			Category:    p.Category.String(),
			URL:         "/projects/" + p.ID.String(),
		})
	}

	for _, m := range menuEntries {
		if containsFold(m.Title, needle) || containsFold(m.Description, needle) {
			out = append(out, models.SearchResult{
				Type:        enums.ResultTypeMenu,
				Title:       m.Title,
				Description: m.Description,
				URL:         m.URL,
				Icon:        m.Icon,
			})
		}
	}

	for _, u := range r.users {
		if !u.IsActive {
			continue
		}
		if containsFold(u.Username, needle) || containsFold(u.DisplayName, needle) {
			out = append(out, models.SearchResult{
				Type:        enums.ResultTypeUser,
				Title:       u.DisplayName,
				Description: "@" + u.Username,
				URL:         "/members/" + u.ID.String(),
				Icon:        u.ProfileIcon,
			})
		}
		if u.StatusMessage != "" && containsFold(u.StatusMessage, needle) {
			out = append(out, models.SearchResult{
				Type:        enums.ResultTypeStatus,
				Title:       u.StatusMessage,
				Description: u.DisplayName,
				URL:         "/members/" + u.ID.String(),
				Icon:        u.ProfileIcon,
			})
		}
	}

	for _, b := range blogPosts {
		if containsFold(b.Title, needle) || containsFold(b.Description, needle) {
			out = append(out, models.SearchResult{
				Type:        enums.ResultTypeBlog,
				Title:       b.Title,
				Description: b.Description,
				URL:         b.URL,
			})
		}
	}
	return out
}

// SearchScoped narrows the unified search to the given result types.
func (r *Repo) SearchScoped(query string, keep ...enums.ResultType) []models.SearchResult {
	hits := r.Search(query)
	var out []models.SearchResult
	for _, hit := range hits {
		for _, t := range keep {
			if hit.Type == t {
				out = append(out, hit)
				break
			}
		}
	}
	return out
}

// SearchByCategory narrows project hits to one category.
func (r *Repo) SearchByCategory(query string, category enums.ProjectCategory) []models.SearchResult {
	hits := r.SearchScoped(query, enums.ResultTypeProject, enums.ResultTypeMyProject)
	var out []models.SearchResult
	for _, hit := range hits {
		if hit.Category == category.String() {
			out = append(out, hit)
		}
	}
	return out
}

// SearchForUser narrows hits to one user's projects.
func (r *Repo) SearchForUser(query string, userID uuid.UUID) []models.SearchResult {
	needle := strings.ToLower(strings.TrimSpace(query))
	if needle == "" {
		return nil
	}
	r.recordSearch(needle)

	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []models.SearchResult
	for _, p := range r.projects {
		if p.OwnerID != userID {
			continue
		}
		if !containsFold(p.Title, needle) && !containsFold(p.Description, needle) {
			continue
		}
		resultType := enums.ResultTypeProject
		if p.OwnerID == r.defaultUser {
			resultType = enums.ResultTypeMyProject
		}
		out = append(out, models.SearchResult{
			Type:        resultType,
			Title:       p.Title,
			Description: p.Description,
			Category:    p.Category.String(),
			URL:         "/projects/" + p.ID.String(),
		})
	}
	return out
}

// Quick truncates the unified result list for typeahead panes.
func (r *Repo) Quick(query string, limit int) []models.SearchResult {
	if limit <= 0 {
		limit = 5
	}
	hits := r.Search(query)
	if len(hits) > limit {
		hits = hits[:limit]
	}
	return hits
}

// Popular returns the most-searched queries this process has seen.
func (r *Repo) Popular(limit int) []models.QueryCount {
	if limit <= 0 {
		limit = 10
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.QueryCount, 0, len(r.searchCounts))
	for q, c := range r.searchCounts {
		out = append(out, models.QueryCount{Query: q, Count: c})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Query < out[j].Query
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

// SearchStats aggregates the server-side search counters.
func (r *Repo) SearchStats() models.SearchAnalytics {
	r.mu.RLock()
	defer r.mu.RUnlock()
	stats := models.SearchAnalytics{TopQueries: []models.QueryCount{}}
	for q, c := range r.searchCounts {
		stats.TotalSearches += c
		stats.TopQueries = append(stats.TopQueries, models.QueryCount{Query: q, Count: c})
	}
	sort.Slice(stats.TopQueries, func(i, j int) bool {
		if stats.TopQueries[i].Count != stats.TopQueries[j].Count {
			return stats.TopQueries[i].Count > stats.TopQueries[j].Count
		}
		return stats.TopQueries[i].Query < stats.TopQueries[j].Query
	})
	if len(stats.TopQueries) > 10 {
		stats.TopQueries = stats.TopQueries[:10]
	}
	stats.RecentSearches = stats.TotalSearches
	now := r.now()
	stats.LastSearched = &now
	return stats
}

// Suggest completes a prefix from seeded titles and names.
func (r *Repo) Suggest(prefix string) []string {
	needle := strings.ToLower(strings.TrimSpace(prefix))
	if needle == "" {
		return nil
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []string
	seen := make(map[string]bool)
	add := func(candidate string) {
		lower := strings.ToLower(candidate)
		if strings.HasPrefix(lower, needle) && !seen[lower] {
			seen[lower] = true
			out = append(out, candidate)
		}
	}
	for _, p := range r.projects {
		add(p.Title)
	}
	for _, u := range r.users {
		if u.IsActive {
			add(u.DisplayName)
			add(u.Username)
		}
	}
	for _, m := range menuEntries {
		add(m.Title)
	}
	for _, b := range blogPosts {
		add(b.Title)
	}
	sort.Strings(out)
	if len(out) > 8 {
		out = out[:8]
	}
	return out
}

func (r *Repo) recordSearch(needle string) {
	r.mu.Lock()
	r.searchCounts[needle]++
	r.mu.Unlock()
}

func containsFold(haystack, lowerNeedle string) bool {
	return strings.Contains(strings.ToLower(haystack), lowerNeedle)
}
