package protocol

import (
	"encoding/json"
	"fmt"
)

// MsgType discriminates server-to-client messages.
type MsgType string

const (
	MsgWelcome          MsgType = "welcome"
	MsgRequestName      MsgType = "request_name"
	MsgRequestMode      MsgType = "request_mode"
	MsgBattleCreated    MsgType = "battle_created"
	MsgAvailableBattles MsgType = "available_battles"
	MsgNoBattles        MsgType = "no_battles"
	MsgBattleJoined     MsgType = "battle_joined"
	MsgOpponentJoined   MsgType = "opponent_joined"
	MsgTeamSelection    MsgType = "team_selection"
	MsgRequestAction    MsgType = "request_action"
	MsgRequestSwitch    MsgType = "request_switch"
	MsgTurnResults      MsgType = "turn_results"
	MsgBattleOver       MsgType = "battle_over"
	MsgError            MsgType = "error"
)

// Lobby modes a client can reply with.
const (
	ModeHost = "host"
	ModeJoin = "join"
)

// Notice is the shape shared by every server message that carries only
// text: welcome, request_name, request_mode, team_selection, no_battles,
// battle_over and error.
type Notice struct {
	Type    MsgType `json:"type"`
	Message string  `json:"message"`
}

// BattleCreated confirms a hosted battle to its host.
type BattleCreated struct {
	Type     MsgType `json:"type"`
	Message  string  `json:"message"`
	BattleID string  `json:"battle_id"`
}

// BattleSummary is one joinable battle in the lobby list.
type BattleSummary struct {
	BattleID string `json:"battle_id"`
	HostName string `json:"host_name"`
}

// AvailableBattles lists the battles waiting for a challenger.
type AvailableBattles struct {
	Type    MsgType         `json:"type"`
	Message string          `json:"message"`
	Battles []BattleSummary `json:"battles"`
}

// BattleJoined confirms a join to the challenger.
type BattleJoined struct {
	Type     MsgType `json:"type"`
	Message  string  `json:"message"`
	HostName string  `json:"host_name"`
	BattleID string  `json:"battle_id"`
}

// OpponentJoined tells a waiting host who arrived.
type OpponentJoined struct {
	Type         MsgType `json:"type"`
	Message      string  `json:"message"`
	OpponentName string  `json:"opponent_name"`
}

// RequestAction asks a side for its next action, carrying the full
// state snapshot from that side's point of view.
type RequestAction struct {
	Type MsgType `json:"type"`
	BattleState
}

// RequestSwitch asks a side to replace its fainted active combatant.
// It carries the same snapshot as RequestAction.
type RequestSwitch struct {
	Type    MsgType `json:"type"`
	Message string  `json:"message"`
	BattleState
}

// TurnResults broadcasts one executed turn. Both sides receive the
// identical log.
type TurnResults struct {
	Type       MsgType  `json:"type"`
	Log        []string `json:"log"`
	BattleOver bool     `json:"battle_over"`
}

// Client replies. Each is a keyed envelope around one value.
type (
	NameReply struct {
		Name string `json:"name"`
	}
	ModeReply struct {
		Mode string `json:"mode"`
	}
	JoinReply struct {
		BattleID string `json:"battle_id"`
	}
	TeamReply struct {
		Team []TeamEntry `json:"team"`
	}
	ActionReply struct {
		Action WireAction `json:"action"`
	}
)

// TeamEntry is one requested roster slot. Level zero means the default
// and a blank nickname means the species name.
type TeamEntry struct {
	ID       int    `json:"id"`
	Nickname string `json:"nickname"`
	Level    int    `json:"level"`
}

// DecodeServerMessage decodes one server frame into its typed variant.
// Used on the client side of the wire.
func DecodeServerMessage(payload []byte) (interface{}, error) {
	var head struct {
		Type MsgType `json:"type"`
	}
	if err := json.Unmarshal(payload, &head); err != nil {
		return nil, err
	}

	var msg interface{}
	switch head.Type {
	case MsgWelcome, MsgRequestName, MsgRequestMode, MsgTeamSelection,
		MsgNoBattles, MsgBattleOver, MsgError:
		msg = &Notice{}
	case MsgBattleCreated:
		msg = &BattleCreated{}
	case MsgAvailableBattles:
		msg = &AvailableBattles{}
	case MsgBattleJoined:
		msg = &BattleJoined{}
	case MsgOpponentJoined:
		msg = &OpponentJoined{}
	case MsgRequestAction:
		msg = &RequestAction{}
	case MsgRequestSwitch:
		msg = &RequestSwitch{}
	case MsgTurnResults:
		msg = &TurnResults{}
	default:
		return nil, fmt.Errorf("unknown message type %q", head.Type)
	}
	if err := json.Unmarshal(payload, msg); err != nil {
		return nil, err
	}
	return msg, nil
}
