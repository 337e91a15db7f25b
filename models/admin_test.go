package models

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestAdminUserJSONHidesPasswordHash(t *testing.T) {
	admin := AdminUser{UserID: "alice", Name: "Alice", PasswordHash: "bcrypt-hash", Role: RoleEditor}

	data, err := json.Marshal(admin)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if strings.Contains(string(data), "bcrypt-hash") {
		t.Errorf("Password hash leaked into JSON: %s", data)
	}
}

func TestAppConfigJSONHidesSingletonKey(t *testing.T) {
	cfg := AppConfig{Key: "app", ContentVersion: 3}

	data, err := json.Marshal(cfg)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if strings.Contains(string(data), `"key"`) {
		t.Errorf("Internal singleton key leaked into JSON: %s", data)
	}
	if !strings.Contains(string(data), `"contentVersion":3`) {
		t.Errorf("Expected contentVersion in JSON: %s", data)
	}
}
