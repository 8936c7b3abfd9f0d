package protocol

import (
	"encoding/json"
	"testing"
)

func TestDecodeServerMessage(t *testing.T) {
	cases := []struct {
		payload string
		check   func(t *testing.T, msg interface{})
	}{
		{
			payload: `{"type":"welcome","message":"Welcome to the Pokémon Battle Server!"}`,
			check: func(t *testing.T, msg interface{}) {
				n, ok := msg.(*Notice)
				if !ok || n.Type != MsgWelcome || n.Message == "" {
					t.Fatalf("msg = %#v", msg)
				}
			},
		},
		{
			payload: `{"type":"battle_created","battle_id":"A1B2C3D4","message":"created"}`,
			check: func(t *testing.T, msg interface{}) {
				m, ok := msg.(*BattleCreated)
				if !ok || m.BattleID != "A1B2C3D4" {
					t.Fatalf("msg = %#v", msg)
				}
			},
		},
		{
			payload: `{"type":"available_battles","message":"pick","battles":[{"battle_id":"X","host_name":"Ash"}]}`,
			check: func(t *testing.T, msg interface{}) {
				m, ok := msg.(*AvailableBattles)
				if !ok || len(m.Battles) != 1 || m.Battles[0].HostName != "Ash" {
					t.Fatalf("msg = %#v", msg)
				}
			},
		},
		{
			payload: `{"type":"turn_results","log":["a","b"],"battle_over":true}`,
			check: func(t *testing.T, msg interface{}) {
				m, ok := msg.(*TurnResults)
				if !ok || len(m.Log) != 2 || !m.BattleOver {
					t.Fatalf("msg = %#v", msg)
				}
			},
		},
		{
			payload: `{"type":"request_action","potions":3,"turn":2,"team":[]}`,
			check: func(t *testing.T, msg interface{}) {
				m, ok := msg.(*RequestAction)
				if !ok || m.Potions != 3 || m.Turn != 2 {
					t.Fatalf("msg = %#v", msg)
				}
			},
		},
		{
			payload: `{"type":"request_switch","message":"pick another","potions":1,"turn":7}`,
			check: func(t *testing.T, msg interface{}) {
				m, ok := msg.(*RequestSwitch)
				if !ok || m.Message != "pick another" || m.Turn != 7 {
					t.Fatalf("msg = %#v", msg)
				}
			},
		},
	}

	for _, tc := range cases {
		msg, err := DecodeServerMessage([]byte(tc.payload))
		if err != nil {
			t.Fatalf("decode %s: %v", tc.payload, err)
		}
		tc.check(t, msg)
	}
}

func TestDecodeServerMessageRejectsUnknownType(t *testing.T) {
	if _, err := DecodeServerMessage([]byte(`{"type":"trade_offer"}`)); err == nil {
		t.Fatal("unknown type should fail")
	}
	if _, err := DecodeServerMessage([]byte(`not json`)); err == nil {
		t.Fatal("malformed payload should fail")
	}
}

func TestRequestActionFlattensTheSnapshot(t *testing.T) {
	payload, err := json.Marshal(RequestAction{
		Type: MsgRequestAction,
		BattleState: BattleState{
			Potions: 3,
			Turn:    5,
			Team:    []CombatantDetail{},
		},
	})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var fields map[string]interface{}
	if err := json.Unmarshal(payload, &fields); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	for _, key := range []string{"type", "active_pokemon", "opponent_pokemon", "team", "potions", "turn"} {
		if _, ok := fields[key]; !ok {
			t.Fatalf("missing top-level %q in %s", key, payload)
		}
	}
	if _, ok := fields["battle_state"]; ok {
		t.Fatalf("snapshot must flatten, got %s", payload)
	}
}
