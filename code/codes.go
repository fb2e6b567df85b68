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

package code

// Action successfully completed (0xxx).
//
// These replies acknowledge a command. Most of them are sent as the final
// line of a reply; the text is a short human-readable confirmation.
const (
	// OK is the bare acknowledgement. It never carries meaningful text.
	OK Code = 0

	// Welcome is the greeting sent right after a client connects,
	// e.g. "BIRD 2.15 ready.".
	Welcome Code = 1

	ReadingConfiguration      Code = 2
	Reconfigured              Code = 3
	ReconfigurationInProgress Code = 4

	// ReconfigurationQueued means a reconfiguration is already running and
	// the new one has been queued behind it.
	ReconfigurationQueued Code = 5

	// ReconfigurationIgnoredShutdown means the daemon is shutting down and
	// the reconfiguration request was dropped.
	ReconfigurationIgnoredShutdown Code = 6

	ShutdownOrdered Code = 7
	AlreadyDisabled Code = 8
	Disabled        Code = 9
	AlreadyEnabled  Code = 10
	Enabled         Code = 11
	Restarted       Code = 12
	StatusReport    Code = 13
	RouteCount      Code = 14
	Reloading       Code = 15

	// AccessRestricted is sent when the control socket is restricted and
	// the command was not executed.
	AccessRestricted Code = 16

	// ReconfigurationUnqueued means a queued configuration was removed
	// while another reconfiguration is in progress.
	ReconfigurationUnqueued Code = 17

	ReconfigurationConfirmed Code = 18

	// NothingToDo answers "configure undo" or "configure confirm" when there
	// is no pending configuration.
	NothingToDo Code = 19

	ConfigurationOK        Code = 20
	UndoRequested          Code = 21
	UndoScheduled          Code = 22
	EvaluatingExpression   Code = 23
	GracefulRestartStatus  Code = 24
	GracefulRestartOrdered Code = 25
)

// Table entries (1xxx).
//
// Each code names the kind of row being listed. Multi-line listings repeat
// the code on every line, so a client can tell rows of different tables
// apart inside a single reply.
const (
	BirdVersion                Code = 1000
	InterfaceList              Code = 1001
	ProtocolList               Code = 1002
	InterfaceAddress           Code = 1003
	InterfaceFlags             Code = 1004
	InterfaceSummary           Code = 1005
	ProtocolDetails            Code = 1006
	RouteList                  Code = 1007
	RouteDetails               Code = 1008
	StaticRouteList            Code = 1009
	SymbolList                 Code = 1010
	Uptime                     Code = 1011
	RouteExtendedAttributeList Code = 1012
	OSPFNeighbors              Code = 1013
	OSPF                       Code = 1014
	OSPFInterface              Code = 1015

	// OSPFState covers both "show ospf state" and "show ospf topology".
	OSPFState Code = 1016

	OSPFLSADB       Code = 1017
	Memory          Code = 1018
	ROAList         Code = 1019
	BFDSessions     Code = 1020
	RIPInterfaces   Code = 1021
	RIPNeighbors    Code = 1022
	BabelInterfaces Code = 1023
	BabelNeighbors  Code = 1024
	BabelEntries    Code = 1025
)

// Table headings (2xxx).
//
// Only two headings are documented individually. Every other 2xxx code is a
// generic table header whose meaning depends on the command that was sent.
const (
	ProtocolListHeader     Code = 2002
	InterfaceSummaryHeader Code = 2005

	TableHeaderMin Code = 2000
	TableHeaderMax Code = 2999
)

// Run-time errors (8xxx).
//
// The command was understood but failed while executing. Codes from
// RuntimeErrorMin upwards have no individual meaning.
const (
	// ReplyTooLong means the reply exceeded the daemon's output limit and
	// was truncated.
	ReplyTooLong Code = 8000

	RouteNotFound          Code = 8001
	ConfigurationFileError Code = 8002

	// NoProtocolsMatch is sent when a protocol pattern in the command
	// matched nothing.
	NoProtocolsMatch Code = 8003

	StoppedDueToReconfiguration Code = 8004

	// ProtocolDown means the protocol is down and cannot be dumped.
	ProtocolDown Code = 8005

	ReloadFailed Code = 8006
	AccessDenied Code = 8007

	RuntimeErrorMin Code = 8008
	RuntimeErrorMax Code = 8999
)

// Parse-time errors (9xxx).
//
// The command was rejected before execution. Codes from ClientErrorMin
// upwards have no individual meaning.
const (
	CommandTooLong Code = 9000
	ParseError     Code = 9001

	// InvalidSymbol means a symbol of the wrong type was used in the
	// command.
	InvalidSymbol Code = 9002

	ClientErrorMin Code = 9003
	ClientErrorMax Code = 9999
)
