package server

import (
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/FernandosLando/pokemonSim/internal/constants"
	"github.com/FernandosLando/pokemonSim/internal/engine"
	"github.com/FernandosLando/pokemonSim/internal/game"
	"github.com/FernandosLando/pokemonSim/internal/logging"
	"github.com/FernandosLando/pokemonSim/internal/protocol"
	"github.com/FernandosLando/pokemonSim/internal/random"
)

// runMatch drives one battle end to end on the host session's
// goroutine: team selection, the turn loop and the closing messages.
// Every exit path goes through endMatch, which schedules the cleanup
// that releases both connections.
func (s *Server) runMatch(hb *hostedBattle) {
	protocol.WriteJSON(hb.hostConn, protocol.OpponentJoined{
		Type:         protocol.MsgOpponentJoined,
		Message:      hb.challengerName + " has joined your battle!",
		OpponentName: hb.challengerName,
	})

	teamPrompt := protocol.Notice{
		Type:    protocol.MsgTeamSelection,
		Message: "Select your team of up to 6 Pokémon.",
	}
	protocol.WriteJSON(hb.hostConn, teamPrompt)
	protocol.WriteJSON(hb.challengerConn, teamPrompt)

	hostEntries, err := readTeam(hb.hostConn)
	if err != nil {
		s.endMatch(hb, "Host disconnected during team selection")
		return
	}
	challengerEntries, err := readTeam(hb.challengerConn)
	if err != nil {
		s.endMatch(hb, "Challenger disconnected during team selection")
		return
	}

	hostSide, err := s.buildSide(hb.hostName, hostEntries)
	if err != nil {
		logging.Warn("rejected host team", logging.Fields{constants.LogFieldBattleID: hb.id, "reason": err.Error()})
		s.endMatch(hb, "Invalid team selection")
		return
	}
	challengerSide, err := s.buildSide(hb.challengerName, challengerEntries)
	if err != nil {
		logging.Warn("rejected challenger team", logging.Fields{constants.LogFieldBattleID: hb.id, "reason": err.Error()})
		s.endMatch(hb, "Invalid team selection")
		return
	}

	rng, seed, err := random.NewRand()
	if err != nil {
		s.endMatch(hb, "Error: "+err.Error())
		return
	}
	battle := game.NewBattle(hostSide, challengerSide)
	eng := engine.New(s.dex, rng)

	s.mu.Lock()
	hb.battle = battle
	hb.status = statusInProgress
	s.mu.Unlock()
	logging.Info("battle started", logging.Fields{
		constants.LogFieldBattleID: hb.id,
		constants.LogFieldPlayer:   hb.hostName,
		constants.LogFieldOpponent: hb.challengerName,
		constants.LogFieldSeed:     seed,
	})

	// Forced-switch announcements land at the front of the next
	// turn's broadcast.
	var preamble []string
	for battle.Status == game.BattleInProgress {
		hostAction, err := s.requestAction(hb.hostConn, battle, hostSide)
		if err != nil {
			s.abortMatch(hb, err)
			return
		}
		challengerAction, err := s.requestAction(hb.challengerConn, battle, challengerSide)
		if err != nil {
			s.abortMatch(hb, err)
			return
		}

		turnLog := eng.ExecuteTurn(battle, hostAction, challengerAction)
		results := protocol.TurnResults{
			Type:       protocol.MsgTurnResults,
			Log:        append(preamble, turnLog...),
			BattleOver: battle.Status != game.BattleInProgress,
		}
		preamble = nil
		if err := protocol.WriteJSON(hb.hostConn, results); err != nil {
			s.abortMatch(hb, err)
			return
		}
		if err := protocol.WriteJSON(hb.challengerConn, results); err != nil {
			s.abortMatch(hb, err)
			return
		}

		preamble = append(preamble, s.forcedSwitch(battle, hostSide, hb.hostConn)...)
		preamble = append(preamble, s.forcedSwitch(battle, challengerSide, hb.challengerConn)...)
	}

	var message string
	if winner := battle.WinnerSide(); winner != nil {
		message = winner.Name + " won the battle!"
	} else {
		message = "No one won the battle!"
	}
	s.recordOutcome(battle)
	logging.Info("battle finished", logging.Fields{
		constants.LogFieldBattleID: hb.id,
		constants.LogFieldTurn:     battle.Turn,
		constants.LogFieldWinner:   winnerName(battle),
	})
	s.endMatch(hb, message)
}

func winnerName(b *game.Battle) string {
	if winner := b.WinnerSide(); winner != nil {
		return winner.Name
	}
	return "draw"
}

// readTeam reads one team reply. A reply without a team key counts as
// a disconnect, same as a transport failure.
func readTeam(conn net.Conn) ([]protocol.TeamEntry, error) {
	var reply protocol.TeamReply
	if err := protocol.ReadJSON(conn, &reply); err != nil {
		return nil, err
	}
	if reply.Team == nil {
		return nil, errors.New("reply carried no team")
	}
	return reply.Team, nil
}

// buildSide turns a team reply into a battle-ready side. Anything off
// about the request rejects the whole team: no silently dropped
// entries.
func (s *Server) buildSide(name string, entries []protocol.TeamEntry) (*game.Side, error) {
	if len(entries) == 0 {
		return nil, errors.New("empty team")
	}
	if len(entries) > game.MaxTeamSize {
		return nil, fmt.Errorf("team has %d members, max is %d", len(entries), game.MaxTeamSize)
	}
	side := game.NewSide(name, game.Control{Kind: game.ControlRemote})
	for _, e := range entries {
		if e.Level < 0 || e.Level > game.MaxLevel {
			return nil, fmt.Errorf("level %d is out of range", e.Level)
		}
		c, err := game.NewCombatant(s.dex, e.ID, e.Level, e.Nickname)
		if err != nil {
			return nil, err
		}
		if err := side.AddCombatant(c); err != nil {
			return nil, err
		}
	}
	return side, nil
}

// requestAction sends the side's snapshot and awaits its declaration.
// Transport failures bubble up and abort the match; a malformed or
// missing action is downgraded to a pass so one bad client reply
// cannot stall the battle.
func (s *Server) requestAction(conn net.Conn, b *game.Battle, side *game.Side) (game.Action, error) {
	req := protocol.RequestAction{
		Type:        protocol.MsgRequestAction,
		BattleState: protocol.StateFor(b, side),
	}
	if err := protocol.WriteJSON(conn, req); err != nil {
		return game.Action{}, err
	}

	var reply protocol.ActionReply
	if err := protocol.ReadJSON(conn, &reply); err != nil {
		return game.Action{}, err
	}
	action, err := reply.Action.Decode()
	if err != nil {
		logging.Warn("substituting pass for bad action", logging.Fields{constants.LogFieldPlayer: side.Name, "reason": err.Error()})
		return game.PassAction(), nil
	}
	return action, nil
}

// forcedSwitch runs the replacement sub-protocol for a side whose
// active combatant fainted. Any reply that is not a usable switch,
// including none at all, falls back to the first conscious teammate;
// a transport failure here surfaces on the next action request
// instead. Returns the announcement lines for the next turn's log.
func (s *Server) forcedSwitch(b *game.Battle, side *game.Side, conn net.Conn) []string {
	if b.Status != game.BattleInProgress {
		return nil
	}
	active := side.Active()
	if active == nil || !active.IsFainted() || !side.HasUsable() {
		return nil
	}

	protocol.WriteJSON(conn, protocol.RequestSwitch{
		Type:        protocol.MsgRequestSwitch,
		Message:     "Your " + active.Nickname + " fainted! Choose another Pokémon.",
		BattleState: protocol.StateFor(b, side),
	})

	switched := false
	var reply protocol.ActionReply
	if err := protocol.ReadJSON(conn, &reply); err == nil {
		if action, err := reply.Action.Decode(); err == nil && action.Kind == game.ActionSwitch {
			switched = side.SwitchTo(action.SwitchIndex)
		}
	}
	if !switched {
		for i, c := range side.Roster {
			if !c.IsFainted() {
				side.SwitchTo(i)
				break
			}
		}
		logging.Warn("auto-selected replacement", logging.Fields{constants.LogFieldPlayer: side.Name})
	}
	return []string{side.Name + " sent out " + side.Active().Nickname + "!"}
}

// abortMatch ends a battle that died to a transport failure, telling
// whichever side is still reachable what happened.
func (s *Server) abortMatch(hb *hostedBattle, cause error) {
	logging.Error("battle aborted", cause, logging.Fields{constants.LogFieldBattleID: hb.id})
	s.endMatch(hb, "Error: "+cause.Error())
}

// endMatch sends the closing message to both sides, marks the entry
// completed and schedules the cleanup that drops it and closes both
// connections after the grace period.
func (s *Server) endMatch(hb *hostedBattle, message string) {
	over := protocol.Notice{Type: protocol.MsgBattleOver, Message: message}
	protocol.WriteJSON(hb.hostConn, over)
	if hb.challengerConn != nil {
		protocol.WriteJSON(hb.challengerConn, over)
	}

	s.mu.Lock()
	hb.status = statusCompleted
	s.mu.Unlock()
	logging.Info("battle over", logging.Fields{constants.LogFieldBattleID: hb.id, constants.LogFieldMessage: message})

	time.AfterFunc(s.cleanupDelay, func() { s.cleanupBattle(hb) })
}

// cleanupBattle drops the registry entry and releases both connections.
func (s *Server) cleanupBattle(hb *hostedBattle) {
	s.mu.Lock()
	delete(s.battles, hb.id)
	delete(s.clients, hb.hostConn)
	if hb.challengerConn != nil {
		delete(s.clients, hb.challengerConn)
	}
	s.mu.Unlock()

	hb.hostConn.Close()
	if hb.challengerConn != nil {
		hb.challengerConn.Close()
	}
}

// recordOutcome persists the finished battle's aggregates. Storage
// trouble is logged, never fatal to the match.
func (s *Server) recordOutcome(b *game.Battle) {
	if s.repo == nil {
		return
	}
	if winner := b.WinnerSide(); winner != nil {
		loser := b.Opponent(winner)
		if err := s.repo.RecordResult(winner.Name, loser.Name); err != nil {
			logging.Error("failed to record battle result", err, logging.Fields{constants.LogFieldWinner: winner.Name})
		}
		return
	}
	if b.IsDraw() {
		if err := s.repo.RecordDraw(b.Sides[0].Name, b.Sides[1].Name); err != nil {
			logging.Error("failed to record battle draw", err, nil)
		}
	}
}
