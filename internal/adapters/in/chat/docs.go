// Package chat drives the order conversation for chat users.
//
// A Controller receives one inbound text per call and returns the reply the
// bot sends back. Each user walks through three states:
//
//	Idle --/start--> AwaitingCustomerName --name--> AwaitingItem
//	AwaitingItem --"ITEMCODE QUANTITY"--> AwaitingItem
//	AwaitingItem --done | cancel--> Idle
//
// /start restarts the conversation from any state and /cancel ends it from
// any non-idle state. Other slash commands and text sent while idle get no
// reply. Turns of the same user are handled one at a time, turns of
// different users run concurrently.
package chat
