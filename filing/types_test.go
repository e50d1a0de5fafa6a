package filing

import "testing"

func TestItemsRegistryCoversAllItemNames(t *testing.T) {
	names := []ItemName{
		Item1, Item1A, Item1B, Item1C, Item2, Item3, Item4, Item5, Item6,
		Item7, Item7A, Item8, Item9, Item9A, Item9B, Item9C, Item10, Item11,
		Item12, Item13, Item15, Item16,
	}

	if len(Items) != len(names) {
		t.Fatalf("got %d registry entries, want %d", len(Items), len(names))
	}

	for _, name := range names {
		info, ok := Items[name]
		if !ok {
			t.Errorf("missing registry entry for %v", name)
			continue
		}
		if info.Item != name {
			t.Errorf("Items[%v].Item = %v, want %v", name, info.Item, name)
		}
		if info.DisplayName == "" {
			t.Errorf("Items[%v].DisplayName is empty", name)
		}
		if info.TechnicalName == "" {
			t.Errorf("Items[%v].TechnicalName is empty", name)
		}
	}
}

func TestItem14IsIntentionallyAbsent(t *testing.T) {
	if _, ok := Items["Item 14"]; ok {
		t.Error("Item 14 should not exist in the registry, matching SEC's 10-K item numbering")
	}
}
