// Package component implements the engine's component tree (§4.2): value
// trees that know how to draw themselves onto a surface.Surface given an
// origin, keyed by a stable ComponentId drawn from a closed enumeration.
package component

import (
	"fmt"

	"github.com/ellery/record/internal/record"
)

// ComponentId is the closed enumeration §4.2 calls for, expressed as an
// opaque comparable string so it can key the surface's drawn-rects
// ledger directly (surface.Drawable.ID() returns string).
type ComponentId string

func selKeyTag(k record.SelectionKey) string {
	switch k.Kind {
	case record.SelFile:
		return fmt.Sprintf("file:%d:%d", k.File.CommitIdx, k.File.FileIdx)
	case record.SelSection:
		return fmt.Sprintf("section:%d:%d:%d", k.Section.CommitIdx, k.Section.FileIdx, k.Section.SectionIdx)
	case record.SelLine:
		return fmt.Sprintf("line:%d:%d:%d:%d", k.Line.CommitIdx, k.Line.FileIdx, k.Line.SectionIdx, k.Line.LineIdx)
	default:
		return "none"
	}
}

func ToggleBoxID(k record.SelectionKey) ComponentId { return ComponentId("toggle:" + selKeyTag(k)) }
func ExpandBoxID(k record.SelectionKey) ComponentId { return ComponentId("expand:" + selKeyTag(k)) }
func SelectableItemID(k record.SelectionKey) ComponentId {
	return ComponentId("item:" + selKeyTag(k))
}
func FileHeaderID(k record.FileKey) ComponentId {
	return ComponentId(fmt.Sprintf("fileheader:%d:%d", k.CommitIdx, k.FileIdx))
}
func StickyFileHeaderID(k record.FileKey) ComponentId {
	return ComponentId(fmt.Sprintf("sticky:%d:%d", k.CommitIdx, k.FileIdx))
}
func EditMessageButtonID(commitIdx int) ComponentId {
	return ComponentId(fmt.Sprintf("editmsg:%d", commitIdx))
}
func DialogButtonID(name string) ComponentId { return ComponentId("dialogbtn:" + name) }

func (c ComponentId) String() string { return string(c) }
