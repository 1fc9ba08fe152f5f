package enums

// ResultType tags a unified search hit with the kind of entity it points at.
type ResultType string

const (
	ResultTypeProject   ResultType = "project"
	ResultTypeMyProject ResultType = "my_project"
	ResultTypeMenu      ResultType = "menu"
	ResultTypeUser      ResultType = "user"
	ResultTypeStatus    ResultType = "status"
	ResultTypeBlog      ResultType = "blog"
)

// resultTypeDisplayOrder is the fixed order groups appear in search output.
var resultTypeDisplayOrder = []ResultType{
	ResultTypeProject,
	ResultTypeMyProject,
	ResultTypeMenu,
	ResultTypeUser,
	ResultTypeStatus,
	ResultTypeBlog,
}

// relevancePriority ranks result types for relevance sorting; lower sorts
// first. Unknown types fall back to relevanceUnknown.
var relevancePriority = map[ResultType]int{
	ResultTypeProject:   1,
	ResultTypeMyProject: 1,
	ResultTypeMenu:      2,
	ResultTypeUser:      3,
	ResultTypeBlog:      4,
	ResultTypeStatus:    5,
}

const relevanceUnknown = 6

// ResultTypeDisplayOrder returns the fixed group ordering.
func ResultTypeDisplayOrder() []ResultType {
	out := make([]ResultType, len(resultTypeDisplayOrder))
	copy(out, resultTypeDisplayOrder)
	return out
}

// RelevancePriority returns the fixed priority for relevance sorting.
func (t ResultType) RelevancePriority() int {
	if p, ok := relevancePriority[t]; ok {
		return p
	}
	return relevanceUnknown
}

// String implements fmt.Stringer.
func (t ResultType) String() string {
	return string(t)
}

// IsValid reports whether the value is a known ResultType.
func (t ResultType) IsValid() bool {
	for _, candidate := range resultTypeDisplayOrder {
		if candidate == t {
			return true
		}
	}
	return false
}
