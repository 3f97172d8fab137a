/*
Package transaction implements the accounting core of the platform.

It owns three flows over the ledger store:

Credit requests. A seller asks for a wallet top up with
CreateCreditRequest. The request is stored as a PENDING transaction from the
user to the wallet and moves no money. An admin then calls
UpdateStatusCreditRequest with APPROVED or REJECTED. The transition is a
conditional update that only succeeds while the row is still PENDING, so of
any number of concurrent approvers exactly one wins and the rest get
AlreadyProcessed. Approval credits the wallet with a relative update in the
same store transaction.

Settlements. SellCharge moves value from the seller's wallet to a phone
number in a single store transaction: a relative debit of the wallet, a
relative credit of the phone number and an APPROVED transaction row. The
store's non-negative balance constraint rejects overdrafts, which surface as
InsufficientBalance with nothing applied.

Reconciliation. ReconcileWallet and ReconcileLedger recompute balances from
the transaction log. For every wallet the balance equals approved credits
minus approved debits, and the phone balances sum to the approved
settlements.

No in-process locks are used. Correctness under concurrency comes entirely
from the store: relative updates, the status compare-and-swap and check
constraints.
*/
package transaction
