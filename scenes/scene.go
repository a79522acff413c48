package scenes

import "github.com/automoto/doomerang-duel/components"

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
	// StartGame ends the menu flow with the chosen configuration and level
	StartGame(game components.GameType, level string)
}

// releaseGame frees resources held by a game configuration that will not be played
func releaseGame(game components.GameType) {
	if session, ok := game.(*components.NetworkSession); ok && session.Conn != nil {
		_ = session.Conn.Close()
	}
}
