package server

import (
	"net"
	"sort"
	"strings"
	"time"

	"github.com/FernandosLando/pokemonSim/internal/constants"
	"github.com/FernandosLando/pokemonSim/internal/logging"
	"github.com/FernandosLando/pokemonSim/internal/protocol"
)

// handleConnection runs the handshake and dispatches into host or join
// mode. The session owns the connection until ownership transfers to a
// match; transferred connections are released by the match cleanup
// instead.
func (s *Server) handleConnection(conn net.Conn) {
	transferred := false
	defer func() {
		if !transferred {
			s.unregisterClient(conn)
			conn.Close()
			logging.Info("connection closed", logging.Fields{constants.LogFieldAddr: conn.RemoteAddr().String()})
		}
	}()

	if err := protocol.WriteJSON(conn, protocol.Notice{
		Type:    protocol.MsgWelcome,
		Message: "Welcome to the Pokémon Battle Server!",
	}); err != nil {
		return
	}
	if err := protocol.WriteJSON(conn, protocol.Notice{
		Type:    protocol.MsgRequestName,
		Message: "Please enter your name:",
	}); err != nil {
		return
	}

	var nameReply protocol.NameReply
	if err := protocol.ReadJSON(conn, &nameReply); err != nil {
		logging.Warn("no name received", logging.Fields{constants.LogFieldAddr: conn.RemoteAddr().String()})
		return
	}
	name := strings.TrimSpace(nameReply.Name)
	if name == "" {
		logging.Warn("blank player name", logging.Fields{constants.LogFieldAddr: conn.RemoteAddr().String()})
		return
	}
	s.registerClient(conn, name)
	logging.Info("player connected", logging.Fields{constants.LogFieldPlayer: name})

	if err := protocol.WriteJSON(conn, protocol.Notice{
		Type:    protocol.MsgRequestMode,
		Message: "Would you like to host a battle or join an existing one?",
	}); err != nil {
		return
	}

	var modeReply protocol.ModeReply
	if err := protocol.ReadJSON(conn, &modeReply); err != nil {
		logging.Warn("no mode received", logging.Fields{constants.LogFieldPlayer: name})
		return
	}

	switch modeReply.Mode {
	case protocol.ModeHost:
		transferred = s.hostBattle(conn, name)
	case protocol.ModeJoin:
		transferred = s.joinBattle(conn, name)
	default:
		logging.Warn("invalid mode", logging.Fields{constants.LogFieldPlayer: name, constants.LogFieldMode: modeReply.Mode})
	}
}

// hostBattle creates a battle, waits for a challenger and runs the
// match to completion. Returns true when connection ownership moved to
// the match cleanup.
func (s *Server) hostBattle(conn net.Conn, name string) bool {
	hb := s.createBattle(name, conn)
	logging.Info("battle created", logging.Fields{constants.LogFieldBattleID: hb.id, constants.LogFieldPlayer: name})

	if err := protocol.WriteJSON(conn, protocol.BattleCreated{
		Type:     protocol.MsgBattleCreated,
		Message:  "Battle #" + hb.id + " created. Waiting for an opponent...",
		BattleID: hb.id,
	}); err != nil {
		s.removeWaitingBattle(hb)
		return false
	}

	// The watchdog read fires if the host hangs up (or speaks out of
	// turn) while waiting, so the battle never lingers with a dead
	// host. It is kicked via a read deadline once a challenger joins.
	watchdogDone := make(chan struct{})
	go s.watchWaitingHost(hb, watchdogDone)

	select {
	case <-hb.joined:
		conn.SetReadDeadline(time.Now())
		<-watchdogDone
		conn.SetReadDeadline(time.Time{})
	case <-hb.cancelled:
		logging.Info("battle cancelled while waiting", logging.Fields{constants.LogFieldBattleID: hb.id})
		return false
	}

	s.runMatch(hb)
	return true
}

// watchWaitingHost blocks on the host connection while the battle
// waits for a challenger. A protocol-abiding host sends nothing in
// that window, so anything the read returns means the host is gone or
// misbehaving and the battle comes down.
func (s *Server) watchWaitingHost(hb *hostedBattle, done chan struct{}) {
	defer close(done)

	_, err := protocol.ReadFrame(hb.hostConn)
	if !s.removeWaitingBattle(hb) {
		// A challenger claimed the battle; the read was kicked loose
		// by the join deadline.
		return
	}
	if err != nil {
		logging.Info("host left while waiting", logging.Fields{constants.LogFieldBattleID: hb.id, constants.LogFieldPlayer: hb.hostName})
	} else {
		logging.Warn("host sent data while waiting", logging.Fields{constants.LogFieldBattleID: hb.id, constants.LogFieldPlayer: hb.hostName})
	}
	close(hb.cancelled)
}

// joinBattle lets a challenger pick a waiting battle. On a successful
// claim the connection belongs to the host's match from here on and
// this session must not close it.
func (s *Server) joinBattle(conn net.Conn, name string) bool {
	waiting := s.waitingBattles()
	if len(waiting) == 0 {
		protocol.WriteJSON(conn, protocol.Notice{
			Type:    protocol.MsgNoBattles,
			Message: "No battles available to join. Try hosting one instead!",
		})
		return false
	}

	if err := protocol.WriteJSON(conn, protocol.AvailableBattles{
		Type:    protocol.MsgAvailableBattles,
		Message: "Choose a battle to join:",
		Battles: waiting,
	}); err != nil {
		return false
	}

	var joinReply protocol.JoinReply
	if err := protocol.ReadJSON(conn, &joinReply); err != nil {
		logging.Warn("no battle selection received", logging.Fields{constants.LogFieldPlayer: name})
		return false
	}

	id := normalizeBattleID(joinReply.BattleID)
	if !battleIDRegex.MatchString(id) {
		protocol.WriteJSON(conn, protocol.Notice{
			Type:    protocol.MsgError,
			Message: "The selected battle is no longer available.",
		})
		return false
	}

	hb, ok := s.claimBattle(id, name, conn)
	if !ok {
		protocol.WriteJSON(conn, protocol.Notice{
			Type:    protocol.MsgError,
			Message: "The selected battle is no longer available.",
		})
		return false
	}

	logging.Info("challenger joined", logging.Fields{constants.LogFieldBattleID: hb.id, constants.LogFieldPlayer: name, constants.LogFieldOpponent: hb.hostName})
	protocol.WriteJSON(conn, protocol.BattleJoined{
		Type:     protocol.MsgBattleJoined,
		Message:  "Joined battle #" + hb.id + " hosted by " + hb.hostName + "!",
		HostName: hb.hostName,
		BattleID: hb.id,
	})
	// Wake the host only now, so the confirmation above is on the wire
	// before the match writes anything to this connection.
	close(hb.joined)
	return true
}

// waitingBattles lists the battles a challenger can join.
func (s *Server) waitingBattles() []protocol.BattleSummary {
	s.mu.Lock()
	defer s.mu.Unlock()

	var waiting []protocol.BattleSummary
	for _, hb := range s.battles {
		if hb.status == statusWaiting {
			waiting = append(waiting, protocol.BattleSummary{BattleID: hb.id, HostName: hb.hostName})
		}
	}
	sort.Slice(waiting, func(i, j int) bool { return waiting[i].BattleID < waiting[j].BattleID })
	return waiting
}
