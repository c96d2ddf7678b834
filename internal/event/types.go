// internal/event/types.go
package event

const (
	AssetStarted       EventType = "AssetStarted"       // генерация ассета началась
	AssetSaved         EventType = "AssetSaved"         // ассет записан на диск
	GenerationFinished EventType = "GenerationFinished" // все ассеты готовы
)

// AssetInfo: данные событий AssetStarted и AssetSaved.
type AssetInfo struct {
	Name   string // человекочитаемое имя ("icon", "splash screen")
	Path   string // пустой для AssetStarted
	Width  int
	Height int
}
