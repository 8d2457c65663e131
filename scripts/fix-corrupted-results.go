package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	assemblyresults "github.com/KirkDiggler/robot-forge/internal/repositories/assembly_results"
)

const (
	resultPrefix = "assembly_result:"
	indexPrefix  = "assembly_result:robot:"
	lockPattern  = "assembly_lock:*"
)

type danglingRef struct {
	index string
	id    string
}

func main() {
	redisURL := os.Getenv("ROBOTFORGE_REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379"
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Fatal("Failed to parse Redis URL:", err)
	}

	client := redis.NewClient(opt)
	ctx := context.Background()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	fmt.Println("Connected to Redis:", redisURL)
	fmt.Println("Scanning assembly history...")

	var corruptedKeys []string
	var indexKeys []string
	var checkedCount int

	iter := client.Scan(ctx, 0, resultPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		key := iter.Val()
		if strings.HasPrefix(key, indexPrefix) {
			indexKeys = append(indexKeys, key)
			continue
		}
		checkedCount++

		data, err := client.Get(ctx, key).Result()
		if err != nil {
			fmt.Printf("Error reading %s: %v\n", key, err)
			continue
		}

		var record assemblyresults.AssemblyRecord
		if err := json.Unmarshal([]byte(data), &record); err != nil {
			fmt.Printf("✗ Corrupted JSON in %s\n", key)
			corruptedKeys = append(corruptedKeys, key)
			continue
		}
		if record.RobotID == "" || resultPrefix+record.ID != key {
			fmt.Printf("✗ Record %s does not match its key (id=%q robot_id=%q)\n", key, record.ID, record.RobotID)
			corruptedKeys = append(corruptedKeys, key)
		}
	}
	if err := iter.Err(); err != nil {
		log.Fatal("Error during scan:", err)
	}

	// Index entries pointing at missing records
	var dangling []danglingRef
	for _, index := range indexKeys {
		ids, err := client.SMembers(ctx, index).Result()
		if err != nil {
			fmt.Printf("Error reading %s: %v\n", index, err)
			continue
		}
		for _, id := range ids {
			n, err := client.Exists(ctx, resultPrefix+id).Result()
			if err != nil {
				fmt.Printf("Error checking %s: %v\n", id, err)
				continue
			}
			if n == 0 {
				dangling = append(dangling, danglingRef{index: index, id: id})
			}
		}
	}

	// Locks written without an expiry would block their robot forever
	var stuckLocks []string
	lockIter := client.Scan(ctx, 0, lockPattern, 0).Iterator()
	for lockIter.Next(ctx) {
		key := lockIter.Val()
		ttl, err := client.TTL(ctx, key).Result()
		if err != nil {
			fmt.Printf("Error reading TTL of %s: %v\n", key, err)
			continue
		}
		if ttl == time.Duration(-1) {
			fmt.Printf("✗ Lock %s has no expiry\n", key)
			stuckLocks = append(stuckLocks, key)
		}
	}
	if err := lockIter.Err(); err != nil {
		log.Fatal("Error during scan:", err)
	}

	fmt.Printf("\nChecked %d records: %d corrupted, %d dangling index entries, %d stuck locks\n",
		checkedCount, len(corruptedKeys), len(dangling), len(stuckLocks))

	if len(corruptedKeys)+len(dangling)+len(stuckLocks) == 0 {
		fmt.Println("Nothing to repair!")
		return
	}

	fmt.Print("\nDo you want to DELETE these entries? (yes/no): ")
	var response string
	_, _ = fmt.Scanln(&response) // nolint:errcheck // empty input means no

	if response != "yes" {
		fmt.Println("Aborted - no changes made")
		return
	}

	for _, key := range append(corruptedKeys, stuckLocks...) {
		if err := client.Del(ctx, key).Err(); err != nil {
			fmt.Printf("Failed to delete %s: %v\n", key, err)
		} else {
			fmt.Printf("Deleted %s\n", key)
		}
	}
	for _, ref := range dangling {
		if err := client.SRem(ctx, ref.index, ref.id).Err(); err != nil {
			fmt.Printf("Failed to remove %s from %s: %v\n", ref.id, ref.index, err)
		} else {
			fmt.Printf("Removed %s from %s\n", ref.id, ref.index)
		}
	}
	fmt.Println("\nRepair complete!")
}
