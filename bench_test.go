package structdump

import (
    "testing"
)

// Benchmark walking a linked owned struct graph with a back reference.
func BenchmarkWalker_Walk_Composite(b *testing.B) {
    head := &link{Name: "head", Values: []int{1, 2, 3}}
    current := head
    for i := 0; i < 100; i++ {
        next := &link{Name: "node", Parent: head}
        current.next = next
        current = next
    }
    current.next = head
    walker := New(WithOwnedPrefix(ownedPrefix))
    b.ReportAllocs()
    b.ResetTimer()
    for i := 0; i < b.N; i++ {
        _ = walker.Walk(head)
    }
}

// Benchmark walking and encoding a nested map.
func BenchmarkMarshal_Mapping(b *testing.B) {
    aMap := map[string]interface{}{}
    for i := 0; i < 100; i++ {
        aMap[string(rune('a'+i%26))+string(rune('a'+i/26))] = []interface{}{i, "x", nil}
    }
    b.ReportAllocs()
    b.ResetTimer()
    for i := 0; i < b.N; i++ {
        _, _ = Marshal(aMap)
    }
}
