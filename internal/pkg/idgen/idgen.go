// Package idgen hands out snowflake ids for ledger entries. Snowflakes are
// time-ordered, so the ledger's id order matches its append order.
package idgen

import "github.com/bwmarrin/snowflake"

var node *snowflake.Node

// Init must be called once at startup before any id is requested.
func Init(machineID int64) error {
	n, err := snowflake.NewNode(machineID)
	if err != nil {
		return err
	}

	node = n

	return nil
}

func Next() int64 {
	return node.Generate().Int64()
}
