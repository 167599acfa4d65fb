package model

import "strings"

// ComponentType identifies the category an upstream classifier assigned to a
// detected component.
type ComponentType int

const (
	ComponentUnknown ComponentType = iota
	ComponentButton
	ComponentInput
	ComponentCard
	ComponentImage
	ComponentNavigation
	ComponentText
	ComponentLabel
	ComponentIcon
	ComponentCheckbox
	ComponentDropdown
	ComponentContainer
	ComponentRectangle
	ComponentHeader
	ComponentFooter
	ComponentSidebar
)

// String returns a string representation of the component type.
func (t ComponentType) String() string {
	switch t {
	case ComponentButton:
		return "button"
	case ComponentInput:
		return "input"
	case ComponentCard:
		return "card"
	case ComponentImage:
		return "image"
	case ComponentNavigation:
		return "navigation"
	case ComponentText:
		return "text"
	case ComponentLabel:
		return "label"
	case ComponentIcon:
		return "icon"
	case ComponentCheckbox:
		return "checkbox"
	case ComponentDropdown:
		return "dropdown"
	case ComponentContainer:
		return "container"
	case ComponentRectangle:
		return "rectangle"
	case ComponentHeader:
		return "header"
	case ComponentFooter:
		return "footer"
	case ComponentSidebar:
		return "sidebar"
	default:
		return "unknown"
	}
}

// ParseComponentType maps a classifier label to a ComponentType. Unrecognized
// labels map to ComponentUnknown.
func ParseComponentType(label string) ComponentType {
	switch strings.ToLower(strings.TrimSpace(label)) {
	case "button":
		return ComponentButton
	case "input", "textfield", "text_field":
		return ComponentInput
	case "card":
		return ComponentCard
	case "image", "picture":
		return ComponentImage
	case "navigation", "nav", "menu":
		return ComponentNavigation
	case "text", "text_block":
		return ComponentText
	case "label":
		return ComponentLabel
	case "icon":
		return ComponentIcon
	case "checkbox":
		return ComponentCheckbox
	case "dropdown", "select":
		return ComponentDropdown
	case "container", "panel":
		return ComponentContainer
	case "rectangle", "rect":
		return ComponentRectangle
	case "header":
		return ComponentHeader
	case "footer":
		return ComponentFooter
	case "sidebar":
		return ComponentSidebar
	default:
		return ComponentUnknown
	}
}

// Component is a classified visual primitive detected in a screenshot.
// Components are produced by an upstream classifier and are read-only here.
type Component struct {
	// ID uniquely identifies the component within one analysis input.
	ID string

	// Type is the classifier-assigned category.
	Type ComponentType

	// Position is the component's bounding box in pixel space.
	Position Position

	// Confidence is the classifier confidence, in [0,1].
	Confidence float64

	// TextContent is text associated with the component, if any.
	TextContent string

	// AspectRatio is width/height as reported by the classifier (0 if unset).
	AspectRatio float64
}

// TextType identifies the role OCR assigned to a recognized text fragment.
type TextType int

const (
	TextUnknown TextType = iota
	TextHeader
	TextLabel
	TextButton
	TextParagraph
	TextCaption
	TextLink
)

// String returns a string representation of the text type.
func (t TextType) String() string {
	switch t {
	case TextHeader:
		return "header"
	case TextLabel:
		return "label"
	case TextButton:
		return "button"
	case TextParagraph:
		return "paragraph"
	case TextCaption:
		return "caption"
	case TextLink:
		return "link"
	default:
		return "unknown"
	}
}

// FontInfo carries optional font measurements reported by OCR.
type FontInfo struct {
	// Size is the estimated font size in pixels.
	Size float64

	// Bold reports whether the text appears bold.
	Bold bool

	// Family is the estimated font family (may be empty).
	Family string
}

// TextElement is a recognized text fragment produced by an external OCR
// stage. Read-only here.
type TextElement struct {
	// ID uniquely identifies the fragment within one analysis input.
	ID string

	// Type is the OCR-assigned role.
	Type TextType

	// Text is the recognized text content.
	Text string

	// Position is the fragment's bounding box in pixel space.
	Position Position

	// Confidence is the OCR confidence, in [0,1].
	Confidence float64

	// Font holds optional font measurements (nil if unavailable).
	Font *FontInfo
}

// ImageDimensions holds the pixel dimensions of the analyzed screenshot.
type ImageDimensions struct {
	Width  float64
	Height float64
}
