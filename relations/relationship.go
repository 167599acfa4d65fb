package relations

// Category classifies a relationship between two elements.
type Category int

const (
	// CategorySpatial covers containment, overlap, alignment, and
	// adjacency relationships derived from geometry alone.
	CategorySpatial Category = iota

	// CategoryFunctional covers relationships implied by component roles,
	// such as an input feeding a submit button.
	CategoryFunctional

	// CategoryHierarchical covers parent/child nesting.
	CategoryHierarchical

	// CategorySemantic covers meaning-level pairings such as a header
	// above its content.
	CategorySemantic

	// CategoryLayout covers relationships reported by the layout stage
	// (alignment groups, grid membership) when materialized as pairs.
	CategoryLayout
)

// String returns a string representation of the category.
func (c Category) String() string {
	switch c {
	case CategorySpatial:
		return "spatial"
	case CategoryFunctional:
		return "functional"
	case CategoryHierarchical:
		return "hierarchical"
	case CategorySemantic:
		return "semantic"
	case CategoryLayout:
		return "layout"
	default:
		return "unknown"
	}
}

// Subtype refines a relationship within its category.
type Subtype int

const (
	SubtypeNone Subtype = iota

	// Spatial subtypes, in precedence order.
	SubtypeContainment
	SubtypeOverlap
	SubtypeAlignedProximity
	SubtypeAdjacency

	// Functional subtypes.
	SubtypeFormSubmission
	SubtypeFormLabeling
	SubtypeFormGroup
	SubtypeNavGroup

	// Hierarchical subtypes.
	SubtypeNesting

	// Semantic subtypes.
	SubtypeHeaderContent
	SubtypeImageCaption
)

// String returns a string representation of the subtype.
func (s Subtype) String() string {
	switch s {
	case SubtypeContainment:
		return "containment"
	case SubtypeOverlap:
		return "overlap"
	case SubtypeAlignedProximity:
		return "aligned_proximity"
	case SubtypeAdjacency:
		return "adjacency"
	case SubtypeFormSubmission:
		return "form_submission"
	case SubtypeFormLabeling:
		return "form_labeling"
	case SubtypeFormGroup:
		return "form_group"
	case SubtypeNavGroup:
		return "nav_group"
	case SubtypeNesting:
		return "nesting"
	case SubtypeHeaderContent:
		return "header_content"
	case SubtypeImageCaption:
		return "image_caption"
	default:
		return "none"
	}
}

// RelativePosition labels where the second element of a pair sits relative
// to the first, by the dominant axis of the center-to-center delta.
type RelativePosition int

const (
	RelPosNone RelativePosition = iota
	RelPosLeft
	RelPosRight
	RelPosAbove
	RelPosBelow
)

// String returns a string representation of the relative position.
func (p RelativePosition) String() string {
	switch p {
	case RelPosLeft:
		return "left"
	case RelPosRight:
		return "right"
	case RelPosAbove:
		return "above"
	case RelPosBelow:
		return "below"
	default:
		return "none"
	}
}

// Relationship records one relationship between two elements. Each unordered
// pair is recorded at most once per category/subtype, with ComponentA before
// ComponentB in the mapper's stable element ordering.
type Relationship struct {
	// ComponentA and ComponentB identify the related elements. Semantic
	// relationships may reference a text element id on either side.
	ComponentA string
	ComponentB string

	// Category and Subtype classify the relationship.
	Category Category
	Subtype  Subtype

	// Strength expresses certainty in [0,1]. Containment is exactly 0.9.
	Strength float64

	// Evidence lists the observations that produced the relationship.
	Evidence []string

	// RelativePosition is where B sits relative to A (spatial only).
	RelativePosition RelativePosition

	// Level is the nesting depth of the contained element (hierarchical
	// only).
	Level int
}
