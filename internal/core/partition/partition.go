package partition

import "hash/fnv"

// Count is the fixed number of logical partitions stores hash into.
const Count = 256

// For returns the partition ID for a store ID.
// Same storeID always maps to the same partition, so a store's work lands on
// the same report shard from run to run.
func For(storeID string) int {
	h := fnv.New32a()
	h.Write([]byte(storeID))
	return int(h.Sum32() % Count)
}
