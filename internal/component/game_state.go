package component

// Phase is the state of a run.
type Phase int

const (
	Playing Phase = iota
	GameOver
)

func (p Phase) String() string {
	switch p {
	case Playing:
		return "playing"
	case GameOver:
		return "game over"
	}
	return "unknown"
}
