package engine

import "github.com/lrstanley/go-ytdlp"

func (e *YtdlpEngine) FetchCommand(req FetchRequest) *ytdlp.Command {
	return e.fetchCommand(req)
}

func (e *YtdlpEngine) ProbeCommand() *ytdlp.Command {
	return e.probeCommand()
}
