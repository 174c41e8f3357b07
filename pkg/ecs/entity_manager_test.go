package ecs

import "testing"

// 测试实体类型定义
type testEntity struct {
	ID    EntityID
	Value int
}

func (e testEntity) EntityID() EntityID { return e.ID }

func TestCreateEntity(t *testing.T) {
	em := NewEntityManager()
	id1 := em.CreateEntity()
	id2 := em.CreateEntity()

	// 测试实体ID唯一性
	if id1 == id2 {
		t.Error("Entity IDs should be unique")
	}

	// 测试ID从1开始
	if id1 != 1 {
		t.Errorf("First entity ID should be 1, got %d", id1)
	}

	if id2 != 2 {
		t.Errorf("Second entity ID should be 2, got %d", id2)
	}
}

func TestDestroyEntityIsDeferred(t *testing.T) {
	em := NewEntityManager()
	items := []testEntity{{ID: em.CreateEntity()}, {ID: em.CreateEntity()}, {ID: em.CreateEntity()}}

	em.DestroyEntity(items[1].ID)

	// 标记后切片内容不变
	if len(items) != 3 {
		t.Fatalf("DestroyEntity should not touch slices, got len %d", len(items))
	}
	if !em.IsMarked(items[1].ID) {
		t.Error("entity should be marked for destruction")
	}
	if em.PendingCount() != 1 {
		t.Errorf("PendingCount: got %d, want 1", em.PendingCount())
	}
}

func TestSweepKeepsOrder(t *testing.T) {
	em := NewEntityManager()
	var items []testEntity
	for i := 0; i < 5; i++ {
		items = append(items, testEntity{ID: em.CreateEntity(), Value: i})
	}

	em.DestroyEntity(items[0].ID)
	em.DestroyEntity(items[3].ID)

	items = Sweep(em, items)

	want := []int{1, 2, 4}
	if len(items) != len(want) {
		t.Fatalf("Sweep: got %d items, want %d", len(items), len(want))
	}
	for i, v := range want {
		if items[i].Value != v {
			t.Errorf("items[%d].Value = %d, want %d", i, items[i].Value, v)
		}
	}

	// Sweep 不清除标记
	if em.PendingCount() != 2 {
		t.Errorf("PendingCount after Sweep: got %d, want 2", em.PendingCount())
	}
	em.ClearMarks()
	if em.PendingCount() != 0 {
		t.Errorf("PendingCount after ClearMarks: got %d, want 0", em.PendingCount())
	}
}

func TestSweepAcrossSlices(t *testing.T) {
	em := NewEntityManager()
	a := []testEntity{{ID: em.CreateEntity()}, {ID: em.CreateEntity()}}
	b := []testEntity{{ID: em.CreateEntity()}}

	em.DestroyEntity(a[1].ID)
	em.DestroyEntity(b[0].ID)

	a = Sweep(em, a)
	b = Sweep(em, b)

	if len(a) != 1 || a[0].ID != 1 {
		t.Errorf("slice a: got %+v", a)
	}
	if len(b) != 0 {
		t.Errorf("slice b should be empty, got %+v", b)
	}
}

func TestReset(t *testing.T) {
	em := NewEntityManager()
	em.CreateEntity()
	id := em.CreateEntity()
	em.DestroyEntity(id)

	em.Reset()

	if em.PendingCount() != 0 {
		t.Errorf("PendingCount after Reset: got %d, want 0", em.PendingCount())
	}
	if got := em.CreateEntity(); got != 3 {
		t.Errorf("first ID after Reset: got %d, want 3", got)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	em.DestroyEntity(id)

	c := em.Clone()
	c.ClearMarks()
	c.CreateEntity()

	if !em.IsMarked(id) {
		t.Error("clearing the clone must not affect the original")
	}
	if got := em.CreateEntity(); got != 2 {
		t.Errorf("original next ID: got %d, want 2", got)
	}
}
