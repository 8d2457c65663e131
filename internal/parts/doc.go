// Package parts implements the robot part capability model.
//
// A Part is built from a robot.PartRecord by the factory and derives
// everything else on demand: effective stats scaled by rarity, upgrade
// level and wear, the tiered capabilities its category unlocks, ability
// gating, synergy with other parts and a per-category performance profile.
// Nothing derived is cached, so upgrades and maintenance are reflected
// immediately.
//
// Category behaviour is a closed set. Every query that varies by category
// switches over robot.PartCategory and the factory rejects anything else,
// so a Part always has exactly one known category.
package parts
