package logger

const SessionStartMsg = "session %s started: variant=%s difficulty=%s fps=%d"
const SessionStopMsg = "session %s stopped after %d frames, score %d:%d"

const ScoreMsg = "%s side scores, now %d:%d payload=%s"
const RestartMsg = "scores reset to 0:0 after %d frames"
const DifficultyChangeMsg = "difficulty %s -> %s, positions reinitialized"
const DifficultyRejectedMsg = "difficulty change to %q rejected: %v"

const CommandDroppedMsg = "command queue full, dropping %s"

const ConfigReloadMsg = "properties %s changed, difficulty now %s"
const ConfigReloadFailedMsg = "properties reload failed: %v"

const HostStartMsg = "%s host starting"
const HostFailedMsg = "%s host failed: %v"
const ClipboardFailedMsg = "clipboard copy failed: %v"
