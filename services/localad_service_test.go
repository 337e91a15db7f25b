package services

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestOrderAssignmentsFollowSequence(t *testing.T) {
	id1 := primitive.NewObjectID()
	id2 := primitive.NewObjectID()
	id3 := primitive.NewObjectID()

	// The caller's sequence defines the new dense ordering.
	assignments, err := orderAssignments([]string{id3.Hex(), id1.Hex(), id2.Hex()})
	if err != nil {
		t.Fatalf("orderAssignments failed: %v", err)
	}

	if len(assignments) != 3 {
		t.Fatalf("Expected 3 assignments, got %d", len(assignments))
	}

	expected := []primitive.ObjectID{id3, id1, id2}
	for i, a := range assignments {
		if a.id != expected[i] {
			t.Errorf("Position %d: expected %s, got %s", i, expected[i].Hex(), a.id.Hex())
		}
		if a.order != i {
			t.Errorf("Position %d: expected order %d, got %d", i, i, a.order)
		}
	}
}

func TestOrderAssignmentsRejectsMalformedIDBeforeAnyWrite(t *testing.T) {
	id1 := primitive.NewObjectID()

	_, err := orderAssignments([]string{id1.Hex(), "broken"})
	if err == nil {
		t.Fatal("Expected error for malformed id")
	}
}

func TestBuildLocalAdUpdateOnlyProvidedFields(t *testing.T) {
	label := "Summer promo"
	update := buildLocalAdUpdate(UpdateLocalAdInput{Label: &label})

	if update["label"] != "Summer promo" {
		t.Errorf("Expected label update, got %v", update["label"])
	}
	if _, ok := update["imageUrl"]; ok {
		t.Error("Expected unset fields to be absent from the update")
	}
	if _, ok := update["updatedAt"]; !ok {
		t.Error("Expected updatedAt to be refreshed")
	}
	if len(update) != 2 {
		t.Errorf("Expected only label and updatedAt, got %v", update)
	}
}
