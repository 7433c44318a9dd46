package server

import "fmt"

func (k CommandKind) Name() string {
	switch k {
	case CmdMultiMove:
		return "multi_move"
	case CmdSwitchAgent:
		return "switch_agent"
	case CmdUseTerminal:
		return "use_terminal"
	case CmdUseSwitch:
		return "use_switch"
	case CmdReset:
		return "reset_position"
	case CmdSetLevel:
		return "set_level"
	case CmdGetLevel:
		return "get_level"
	case CmdState:
		return "get_state"
	default:
		return fmt.Sprintf("n/a:%d", k)
	}
}
