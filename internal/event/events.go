// internal/event/events.go
package event

import "github.com/bethropolis/tedit/internal/types"

// Type identifies the kind of event.
type Type int

const (
	TypeUnknown Type = iota

	// Document events
	TypeBufferModified // buffer content changed; Data is BufferModifiedData
	TypeBufferLoaded   // a file replaced the buffer; Data is BufferLoadedData
	TypeBufferSaved    // buffer written to disk; Data is BufferSavedData
	TypeCursorMoved    // Data is CursorMovedData
	TypeLanguageChanged

	// Outside world
	TypeFileChangedOnDisk // the open file was changed by another program

	// Application lifecycle
	TypeAppReady
	TypeAppQuit
	TypeThemeChanged
)

var typeNames = map[Type]string{
	TypeUnknown:           "Unknown",
	TypeBufferModified:    "BufferModified",
	TypeBufferLoaded:      "BufferLoaded",
	TypeBufferSaved:       "BufferSaved",
	TypeCursorMoved:       "CursorMoved",
	TypeLanguageChanged:   "LanguageChanged",
	TypeFileChangedOnDisk: "FileChangedOnDisk",
	TypeAppReady:          "AppReady",
	TypeAppQuit:           "AppQuit",
	TypeThemeChanged:      "ThemeChanged",
}

func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return "Unknown"
}

// Event is the structure passed through the event bus.
type Event struct {
	Type Type
	Data interface{}
}

// BufferModifiedData carries the line span touched by one buffer primitive.
type BufferModifiedData struct {
	Edit types.EditInfo
}

type BufferLoadedData struct {
	FilePath string
}

type BufferSavedData struct {
	FilePath string
}

type CursorMovedData struct {
	NewPosition types.Position
}

// LanguageChangedData names the language now active ("" for none).
type LanguageChangedData struct {
	Name string
}

type FileChangedOnDiskData struct {
	FilePath string
}

type ThemeChangedData struct {
	Name string
}
