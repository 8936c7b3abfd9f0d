// Package server hosts remote battles over TCP. Every accepted
// connection runs a handshake session; a host session then drives the
// whole match on its own goroutine while the challenger's connection
// is handed over to it.
package server

import (
	"math/rand"
	"net"
	"regexp"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/FernandosLando/pokemonSim/internal/constants"
	"github.com/FernandosLando/pokemonSim/internal/game"
	"github.com/FernandosLando/pokemonSim/internal/logging"
	"github.com/FernandosLando/pokemonSim/internal/storage"
)

const battleIDCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
const battleIDLength = 8

var battleIDRegex = regexp.MustCompile("^[A-Z0-9]{8}$")

func normalizeBattleID(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// battleCleanupDelay keeps a completed battle visible in the registry
// for a grace period before its connections are released.
const battleCleanupDelay = 60 * time.Second

type battleStatus string

const (
	statusWaiting       battleStatus = "waiting"
	statusTeamSelection battleStatus = "team_selection"
	statusInProgress    battleStatus = "in_progress"
	statusCompleted     battleStatus = "completed"
)

// hostedBattle is one registry entry. The joined channel closes when a
// challenger attaches, cancelled when the host drops out while
// waiting; at most one of the two ever closes.
type hostedBattle struct {
	id             string
	hostName       string
	hostConn       net.Conn
	challengerName string
	challengerConn net.Conn
	status         battleStatus
	battle         *game.Battle
	joined         chan struct{}
	cancelled      chan struct{}
}

// Server accepts battle connections and keeps the lobby registries.
// All registry access goes through the mutex; battle state itself is
// only ever touched by the host session's goroutine.
type Server struct {
	dex          *game.Dex
	repo         storage.Repository
	cleanupDelay time.Duration

	mu      sync.Mutex
	battles map[string]*hostedBattle
	clients map[net.Conn]string
}

func NewServer(dex *game.Dex, repo storage.Repository) *Server {
	return &Server{
		dex:          dex,
		repo:         repo,
		cleanupDelay: battleCleanupDelay,
		battles:      make(map[string]*hostedBattle),
		clients:      make(map[net.Conn]string),
	}
}

// Run listens on addr and serves connections until the listener fails.
func (s *Server) Run(addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	logging.Info("battle server listening", logging.Fields{constants.LogFieldAddr: ln.Addr().String()})
	return s.Serve(ln)
}

// Serve accepts connections from ln, one session goroutine each.
func (s *Server) Serve(ln net.Listener) error {
	for {
		conn, err := ln.Accept()
		if err != nil {
			return err
		}
		logging.Info("client connected", logging.Fields{constants.LogFieldAddr: conn.RemoteAddr().String()})
		go s.handleConnection(conn)
	}
}

func (s *Server) registerClient(conn net.Conn, name string) {
	s.mu.Lock()
	s.clients[conn] = name
	s.mu.Unlock()
}

func (s *Server) unregisterClient(conn net.Conn) {
	s.mu.Lock()
	delete(s.clients, conn)
	s.mu.Unlock()
}

// createBattle registers a new waiting battle under a fresh id.
func (s *Server) createBattle(hostName string, hostConn net.Conn) *hostedBattle {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := generateBattleID()
	for {
		if _, exists := s.battles[id]; !exists {
			break
		}
		id = generateBattleID()
	}
	hb := &hostedBattle{
		id:        id,
		hostName:  hostName,
		hostConn:  hostConn,
		status:    statusWaiting,
		joined:    make(chan struct{}),
		cancelled: make(chan struct{}),
	}
	s.battles[id] = hb
	return hb
}

// removeWaitingBattle drops hb from the registry if it is still
// waiting for a challenger. Reports whether it did.
func (s *Server) removeWaitingBattle(hb *hostedBattle) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if hb.status != statusWaiting {
		return false
	}
	delete(s.battles, hb.id)
	return true
}

// claimBattle attaches a challenger to a waiting battle. Fails when
// the id is unknown or the battle is no longer waiting, which also
// covers a second challenger racing for the same battle. The caller
// signals the host via hb.joined once the challenger has its
// confirmation, so battle_joined always precedes the host's first
// write to that connection.
func (s *Server) claimBattle(id, challengerName string, challengerConn net.Conn) (*hostedBattle, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	hb, ok := s.battles[id]
	if !ok || hb.status != statusWaiting {
		return nil, false
	}
	hb.challengerName = challengerName
	hb.challengerConn = challengerConn
	hb.status = statusTeamSelection
	return hb, true
}

// generateBattleID creates a short alphanumeric id for joining battles.
func generateBattleID() string {
	b := make([]byte, battleIDLength)
	for i := range b {
		b[i] = battleIDCharset[rand.Intn(len(battleIDCharset))]
	}
	return string(b)
}

// BattleInfo is a point-in-time registry row, exposed to the ops API.
type BattleInfo struct {
	BattleID       string `json:"battle_id"`
	HostName       string `json:"host_name"`
	ChallengerName string `json:"challenger_name,omitempty"`
	Status         string `json:"status"`
}

// Battles returns a snapshot of the registry sorted by battle id.
func (s *Server) Battles() []BattleInfo {
	s.mu.Lock()
	defer s.mu.Unlock()

	infos := make([]BattleInfo, 0, len(s.battles))
	for _, hb := range s.battles {
		infos = append(infos, BattleInfo{
			BattleID:       hb.id,
			HostName:       hb.hostName,
			ChallengerName: hb.challengerName,
			Status:         string(hb.status),
		})
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].BattleID < infos[j].BattleID })
	return infos
}
