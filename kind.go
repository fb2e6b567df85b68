/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package birdreply

import (
	"strconv"
	"strings"

	"dirpx.dev/birdreply/code"
	"dirpx.dev/birdreply/reason"
)

// Kind is the closed set of reply variants.
//
// Every reply code maps to exactly one Kind. Discrete kinds stand for one
// documented code each; TableHeader, RuntimeError, ClientError and Unknown
// stand for a range and carry the code they were decoded from.
type Kind uint8

const (
	// 0xxx: action successfully completed.

	// OK is the bare acknowledgement (0000). It carries no text.
	OK Kind = iota
	Welcome
	ReadingConfiguration
	Reconfigured
	ReconfigurationInProgress
	ReconfigurationQueued
	ReconfigurationIgnoredShutdown
	ShutdownOrdered
	AlreadyDisabled
	Disabled
	AlreadyEnabled
	Enabled
	Restarted
	StatusReport
	RouteCount
	Reloading
	AccessRestricted
	ReconfigurationUnqueued
	ReconfigurationConfirmed
	NothingToDo
	ConfigurationOK
	UndoRequested
	UndoScheduled
	EvaluatingExpression
	GracefulRestartStatus
	GracefulRestartOrdered

	// 1xxx: table entries.
	BirdVersion
	InterfaceList
	ProtocolList
	InterfaceAddress
	InterfaceFlags
	InterfaceSummary
	ProtocolDetails
	RouteList
	RouteDetails
	StaticRouteList
	SymbolList
	Uptime
	RouteExtendedAttributeList
	OSPFNeighbors
	OSPF
	OSPFInterface
	OSPFState
	OSPFLSADB
	Memory
	ROAList
	BFDSessions
	RIPInterfaces
	RIPNeighbors
	BabelInterfaces
	BabelNeighbors
	BabelEntries

	// 2xxx: table headings.
	ProtocolListHeader
	InterfaceSummaryHeader

	// TableHeader is any 2xxx heading without a dedicated kind. It
	// carries the original code.
	TableHeader

	// 8xxx: run-time errors.
	ReplyTooLong
	RouteNotFound
	ConfigurationFileError
	NoProtocolsMatch
	StoppedDueToReconfiguration
	ProtocolDown
	ReloadFailed
	AccessDenied

	// RuntimeError is any 8008-8999 error. It carries the original code.
	RuntimeError

	// 9xxx: parse-time errors.
	CommandTooLong
	ParseError
	InvalidSymbol

	// ClientError is any 9003-9999 error. It carries the original code.
	ClientError

	// Unknown is the fallback for codes outside every documented band.
	// It carries the original code.
	Unknown

	// kindCount must stay last.
	kindCount
)

// kindInfo describes one kind. For code-carrying kinds code is the nominal
// code, otherwise it is the fixed code of the kind.
type kindInfo struct {
	name    string
	reason  reason.Reason
	band    code.Band
	code    code.Code
	carries bool
}

// nominalUnknown is the code New assigns to Unknown: the first value that
// does not fit the wire format.
const nominalUnknown = code.Max + 1

var kinds = [...]kindInfo{
	OK:                             {"OK", "info.ok", code.BandInformational, code.OK, false},
	Welcome:                        {"Welcome", "info.welcome", code.BandInformational, code.Welcome, false},
	ReadingConfiguration:           {"ReadingConfiguration", "info.reading_configuration", code.BandInformational, code.ReadingConfiguration, false},
	Reconfigured:                   {"Reconfigured", "info.reconfigured", code.BandInformational, code.Reconfigured, false},
	ReconfigurationInProgress:      {"ReconfigurationInProgress", "info.reconfiguration_in_progress", code.BandInformational, code.ReconfigurationInProgress, false},
	ReconfigurationQueued:          {"ReconfigurationQueued", "info.reconfiguration_queued", code.BandInformational, code.ReconfigurationQueued, false},
	ReconfigurationIgnoredShutdown: {"ReconfigurationIgnoredShutdown", "info.reconfiguration_ignored_shutdown", code.BandInformational, code.ReconfigurationIgnoredShutdown, false},
	ShutdownOrdered:                {"ShutdownOrdered", "info.shutdown_ordered", code.BandInformational, code.ShutdownOrdered, false},
	AlreadyDisabled:                {"AlreadyDisabled", "info.already_disabled", code.BandInformational, code.AlreadyDisabled, false},
	Disabled:                       {"Disabled", "info.disabled", code.BandInformational, code.Disabled, false},
	AlreadyEnabled:                 {"AlreadyEnabled", "info.already_enabled", code.BandInformational, code.AlreadyEnabled, false},
	Enabled:                        {"Enabled", "info.enabled", code.BandInformational, code.Enabled, false},
	Restarted:                      {"Restarted", "info.restarted", code.BandInformational, code.Restarted, false},
	StatusReport:                   {"StatusReport", "info.status_report", code.BandInformational, code.StatusReport, false},
	RouteCount:                     {"RouteCount", "info.route_count", code.BandInformational, code.RouteCount, false},
	Reloading:                      {"Reloading", "info.reloading", code.BandInformational, code.Reloading, false},
	AccessRestricted:               {"AccessRestricted", "info.access_restricted", code.BandInformational, code.AccessRestricted, false},
	ReconfigurationUnqueued:        {"ReconfigurationUnqueued", "info.reconfiguration_unqueued", code.BandInformational, code.ReconfigurationUnqueued, false},
	ReconfigurationConfirmed:       {"ReconfigurationConfirmed", "info.reconfiguration_confirmed", code.BandInformational, code.ReconfigurationConfirmed, false},
	NothingToDo:                    {"NothingToDo", "info.nothing_to_do", code.BandInformational, code.NothingToDo, false},
	ConfigurationOK:                {"ConfigurationOK", "info.configuration_ok", code.BandInformational, code.ConfigurationOK, false},
	UndoRequested:                  {"UndoRequested", "info.undo_requested", code.BandInformational, code.UndoRequested, false},
	UndoScheduled:                  {"UndoScheduled", "info.undo_scheduled", code.BandInformational, code.UndoScheduled, false},
	EvaluatingExpression:           {"EvaluatingExpression", "info.evaluating_expression", code.BandInformational, code.EvaluatingExpression, false},
	GracefulRestartStatus:          {"GracefulRestartStatus", "info.graceful_restart_status", code.BandInformational, code.GracefulRestartStatus, false},
	GracefulRestartOrdered:         {"GracefulRestartOrdered", "info.graceful_restart_ordered", code.BandInformational, code.GracefulRestartOrdered, false},
	BirdVersion:                    {"BirdVersion", "table.bird_version", code.BandTableEntry, code.BirdVersion, false},
	InterfaceList:                  {"InterfaceList", "table.interface_list", code.BandTableEntry, code.InterfaceList, false},
	ProtocolList:                   {"ProtocolList", "table.protocol_list", code.BandTableEntry, code.ProtocolList, false},
	InterfaceAddress:               {"InterfaceAddress", "table.interface_address", code.BandTableEntry, code.InterfaceAddress, false},
	InterfaceFlags:                 {"InterfaceFlags", "table.interface_flags", code.BandTableEntry, code.InterfaceFlags, false},
	InterfaceSummary:               {"InterfaceSummary", "table.interface_summary", code.BandTableEntry, code.InterfaceSummary, false},
	ProtocolDetails:                {"ProtocolDetails", "table.protocol_details", code.BandTableEntry, code.ProtocolDetails, false},
	RouteList:                      {"RouteList", "table.route_list", code.BandTableEntry, code.RouteList, false},
	RouteDetails:                   {"RouteDetails", "table.route_details", code.BandTableEntry, code.RouteDetails, false},
	StaticRouteList:                {"StaticRouteList", "table.static_route_list", code.BandTableEntry, code.StaticRouteList, false},
	SymbolList:                     {"SymbolList", "table.symbol_list", code.BandTableEntry, code.SymbolList, false},
	Uptime:                         {"Uptime", "table.uptime", code.BandTableEntry, code.Uptime, false},
	RouteExtendedAttributeList:     {"RouteExtendedAttributeList", "table.route_extended_attribute_list", code.BandTableEntry, code.RouteExtendedAttributeList, false},
	OSPFNeighbors:                  {"OSPFNeighbors", "table.ospf_neighbors", code.BandTableEntry, code.OSPFNeighbors, false},
	OSPF:                           {"OSPF", "table.ospf", code.BandTableEntry, code.OSPF, false},
	OSPFInterface:                  {"OSPFInterface", "table.ospf_interface", code.BandTableEntry, code.OSPFInterface, false},
	OSPFState:                      {"OSPFState", "table.ospf_state", code.BandTableEntry, code.OSPFState, false},
	OSPFLSADB:                      {"OSPFLSADB", "table.ospf_lsadb", code.BandTableEntry, code.OSPFLSADB, false},
	Memory:                         {"Memory", "table.memory", code.BandTableEntry, code.Memory, false},
	ROAList:                        {"ROAList", "table.roa_list", code.BandTableEntry, code.ROAList, false},
	BFDSessions:                    {"BFDSessions", "table.bfd_sessions", code.BandTableEntry, code.BFDSessions, false},
	RIPInterfaces:                  {"RIPInterfaces", "table.rip_interfaces", code.BandTableEntry, code.RIPInterfaces, false},
	RIPNeighbors:                   {"RIPNeighbors", "table.rip_neighbors", code.BandTableEntry, code.RIPNeighbors, false},
	BabelInterfaces:                {"BabelInterfaces", "table.babel_interfaces", code.BandTableEntry, code.BabelInterfaces, false},
	BabelNeighbors:                 {"BabelNeighbors", "table.babel_neighbors", code.BandTableEntry, code.BabelNeighbors, false},
	BabelEntries:                   {"BabelEntries", "table.babel_entries", code.BandTableEntry, code.BabelEntries, false},
	ProtocolListHeader:             {"ProtocolListHeader", "header.protocol_list", code.BandTableHeader, code.ProtocolListHeader, false},
	InterfaceSummaryHeader:         {"InterfaceSummaryHeader", "header.interface_summary", code.BandTableHeader, code.InterfaceSummaryHeader, false},
	TableHeader:                    {"TableHeader", "header.table", code.BandTableHeader, code.TableHeaderMin, true},
	ReplyTooLong:                   {"ReplyTooLong", "runtime.reply_too_long", code.BandRuntimeError, code.ReplyTooLong, false},
	RouteNotFound:                  {"RouteNotFound", "runtime.route_not_found", code.BandRuntimeError, code.RouteNotFound, false},
	ConfigurationFileError:         {"ConfigurationFileError", "runtime.configuration_file_error", code.BandRuntimeError, code.ConfigurationFileError, false},
	NoProtocolsMatch:               {"NoProtocolsMatch", "runtime.no_protocols_match", code.BandRuntimeError, code.NoProtocolsMatch, false},
	StoppedDueToReconfiguration:    {"StoppedDueToReconfiguration", "runtime.stopped_due_to_reconfiguration", code.BandRuntimeError, code.StoppedDueToReconfiguration, false},
	ProtocolDown:                   {"ProtocolDown", "runtime.protocol_down", code.BandRuntimeError, code.ProtocolDown, false},
	ReloadFailed:                   {"ReloadFailed", "runtime.reload_failed", code.BandRuntimeError, code.ReloadFailed, false},
	AccessDenied:                   {"AccessDenied", "runtime.access_denied", code.BandRuntimeError, code.AccessDenied, false},
	RuntimeError:                   {"RuntimeError", "runtime.error", code.BandRuntimeError, code.RuntimeErrorMin, true},
	CommandTooLong:                 {"CommandTooLong", "client.command_too_long", code.BandClientError, code.CommandTooLong, false},
	ParseError:                     {"ParseError", "client.parse_error", code.BandClientError, code.ParseError, false},
	InvalidSymbol:                  {"InvalidSymbol", "client.invalid_symbol", code.BandClientError, code.InvalidSymbol, false},
	ClientError:                    {"ClientError", "client.error", code.BandClientError, code.ClientErrorMin, true},
	Unknown:                        {"Unknown", "unknown", code.BandUnknown, nominalUnknown, true},
}

// The table must have exactly one row per kind.
var _ = [1]struct{}{}[len(kinds)-int(kindCount)]

// Valid reports whether k is one of the declared kinds.
func (k Kind) Valid() bool {
	return k < kindCount
}

func (k Kind) info() kindInfo {
	if !k.Valid() {
		return kinds[Unknown]
	}
	return kinds[k]
}

// String returns the Go name of the kind, e.g. "RouteNotFound".
func (k Kind) String() string {
	return k.info().name
}

// Reason returns the dotted name of the kind, e.g. "runtime.route_not_found".
func (k Kind) Reason() reason.Reason {
	return k.info().reason
}

// Band returns the band the kind belongs to. Unknown belongs to
// code.BandUnknown whatever code it carries.
func (k Kind) Band() code.Band {
	return k.info().band
}

// CarriesCode reports whether messages of this kind keep the code they were
// decoded from. It is true for TableHeader, RuntimeError, ClientError and
// Unknown.
func (k Kind) CarriesCode() bool {
	return k.info().carries
}

// Code returns the fixed code of a discrete kind. For code-carrying kinds it
// returns the nominal code used by New.
func (k Kind) Code() code.Code {
	return k.info().code
}

// Kinds returns every declared kind in declaration order.
func Kinds() []Kind {
	out := make([]Kind, kindCount)
	for i := range out {
		out[i] = Kind(i)
	}
	return out
}

// ParseKind looks a kind up by its Go name ("RouteNotFound", case
// insensitive) or by its reason ("runtime.route_not_found").
func ParseKind(s string) (Kind, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Unknown, false
	}
	for i := range kinds {
		if strings.EqualFold(kinds[i].name, s) {
			return Kind(i), true
		}
	}
	if r, err := reason.Parse(s); err == nil {
		if k, ok := byReason[r]; ok {
			return k, true
		}
	}
	return Unknown, false
}

var (
	// discrete is the exact-match table used by Decode. It is derived from
	// kinds so that Decode and Encode cannot disagree.
	discrete = make(map[code.Code]Kind, len(kinds))
	byReason = make(map[reason.Reason]Kind, len(kinds))
)

func init() {
	for i, ki := range kinds {
		if ki.name == "" {
			panic("birdreply: kind " + strconv.Itoa(i) + " has no table row")
		}
		if _, dup := byReason[ki.reason]; dup {
			panic("birdreply: duplicate reason " + string(ki.reason))
		}
		byReason[ki.reason] = Kind(i)
		if ki.carries {
			continue
		}
		if prev, dup := discrete[ki.code]; dup {
			panic("birdreply: code " + ki.code.String() + " claimed by both " + prev.String() + " and " + ki.name)
		}
		discrete[ki.code] = Kind(i)
	}
}
