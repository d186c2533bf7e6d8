package catalog

import "strings"

// Pinned bodies are Discord markdown, which is full of backticks that Go raw
// string literals cannot contain. They are authored below with ~ standing in
// for the backtick and converted on construction. The source texts contain no
// literal tildes.
func m(s string) string {
	return strings.ReplaceAll(s, "~", "`")
}

// defaultPins maps channel name to the ordered messages pinned there. Link
// targets still carry the placeholder token; the provisioning engine refuses
// to pin until they are replaced with live URLs.
func defaultPins() map[string][]string {
	return map[string][]string{
		"welcome": {
			m(`## Welcome to RillCoin

RillCoin uses progressive concentration decay to prevent whale accumulation. The more you hoard, the more flows back to miners. A cryptocurrency designed for circulation, not concentration.

**"Wealth should flow like water."**

---

**What is this project?**

RillCoin is a proof-of-work cryptocurrency with a built-in concentration decay mechanism that redistributes dormant holdings to active miners. It is currently in active development. The testnet is live and open to participation.

---

**Getting started:**

1. Read the rules → #rules
2. Verify your account → #roles-and-verification
3. Check the FAQ if you want to understand decay before anything else → #faq
4. Join the conversation → #general

---

**Security reminder:**
No Core Team member or Moderator will ever DM you first to offer support, airdrops, or giveaways. If someone DMs you claiming to be from the team, it is a scam. Report it using the ~/report~ command or open a ticket in #create-ticket.

**Protect yourself from DM spam:**
Go to Server Settings (click the server name) → Privacy Settings → disable "Allow direct messages from server members." This prevents strangers in this server from messaging you directly.`),
			m(`## What is concentration decay?

RillCoin implements progressive concentration decay. When a wallet's balance exceeds defined thresholds, the portion above each threshold decays over time and flows into the mining pool, where it is redistributed to active miners.

The larger your balance, the faster the excess decays. This is not a penalty — it is a circulation incentive. Wealth should flow like water, not pool in reservoirs.

---

**Key links:**
- Documentation: [docs.rillcoin.com](URL_PLACEHOLDER)
- GitHub: [github.com/rillcoin](URL_PLACEHOLDER)
- Website: [rillcoin.com](URL_PLACEHOLDER)
- Testnet guide: [docs.rillcoin.com/testnet](URL_PLACEHOLDER)
- Whitepaper: [docs.rillcoin.com/whitepaper](URL_PLACEHOLDER)

---

**Channels to explore:**
- Technical discussion → #protocol
- Node setup and mining → #node-operators
- Testnet participation → #testnet-general
- Testnet coins → #faucet
- Governance → #governance-general`),
		},
		"rules": {
			m(`## RillCoin Community Rules

These rules apply to all channels, threads, and interactions in this server.

---

**Zero Tolerance — Immediate Permanent Ban**

The following result in a permanent ban with no warning. These are not negotiable.

- **Scam attempts** — fake giveaways, fake airdrops, fake contract addresses, wallet recovery services, or any message designed to extract funds or private keys
- **Impersonation** — pretending to be a Core Team member, Moderator, or project representative; this includes similar usernames, copied profile pictures, or claiming to be "official support" in DMs
- **Phishing links** — links to phishing sites, fake exchange listings, or wallet drainers
- **Coordinated price manipulation** — organizing buy/sell coordination or explicitly encouraging others to manipulate markets
- **Doxxing** — publishing personal identifying information about any community member without consent

Permanent bans are not eligible for appeal for 90 days. Zero tolerance bans are not eligible for appeal at any time.

---

**Serious Violations — Escalating Enforcement**

Warning → 1-hour timeout → 24-hour timeout → 7-day timeout → Permanent ban.

- Repeated spam after a warning
- Hate speech or targeted harassment
- Sharing wallet seed phrases or private keys (yours or anyone else's)
- Repeatedly posting price predictions framed as certainties
- Evading a timeout with an alternate account
- Posting competitor project content in a promotional context`),
			m(`**Minor Violations — Warning, then escalation**

- Off-topic posting in channels with specific purposes
- Using banned words (see list below)
- Running bot commands outside #bot-commands
- Excessive meme posting outside #memes

---

**Banned words and phrases**
The following are not permitted in this server in an investment or hype context:
moon, lambo, pump, dump, gem, ape, degen, wagmi, ngmi, diamond hands, paper hands, rug, shill

---

**Anti-scam reminder**
No Core Team member or Moderator will ever DM you first. We do not offer support, airdrops, or giveaways via DM. Official support goes through #create-ticket. If someone contacts you claiming to be from the RillCoin team, report it immediately using ~/report~.

---

**Appeals**
If you believe a moderation action was applied in error, email appeals@rillcoin.com or use the appeal form linked in your ban notice. Appeals are reviewed by Core Team within 7 days.

---

**Enforcement is consistent and documented.** Moderators follow this policy. If you observe a rule violation, use ~/report~ or open a ticket in #create-ticket rather than engaging directly.`),
		},
		"roles-and-verification": {
			m(`## Roles and Verification

**Step 1: Verify your account**
Click the verification button below this message to complete account verification. Your account must be at least 14 days old. Accounts under 30 days old may be asked to complete a CAPTCHA.

On success, you receive the **Member** role and full access to the server.

---

**Role overview — Team**

**Founder** (orange name) — Project founders. Administrator access. If you see this role, you are speaking with project leadership.

**Core Team** (blue name) — Full-time contributors building the protocol. Manage messages, threads, and announcements.

**Moderator** — Community enforcement. Day-to-day moderation. Distinguished from Core Team to clarify who is building vs. who is enforcing.

---

**Role overview — Earned**

**Contributor** (blue-light) — Unlocks access to #governance-general and #proposals. Earned by: submitting a verified bug report, merging a GitHub contribution, authoring an approved governance proposal, or 30 days active with 500+ messages and no violations (reviewed manually).

**Testnet Participant** (cyan) — Automatically assigned when you use the faucet and confirm receipt. Shows you are testing the network.

**Bug Hunter** (orange) — Awarded manually by Core Team for each confirmed Medium+ severity bug report. Can be earned multiple times.

**Ambassador** (blue) — Community evangelists representing RillCoin in external spaces. Requires application. See Pinned Message 2 for eligibility.`),
			m(`**Role overview — General**

**Member** — Verified community member. Access to all public channels. Assigned automatically after verification.

**Unverified** — New joins before verification. Read-only access to #welcome, #rules, #roles-and-verification, and #faq only.

---

**Opt-in notification roles**
Self-assign pings for content you care about. Run ~/role~ in #bot-commands.

- **Announcements Ping** — Major releases and milestones
- **Testnet Ping** — Testnet events and status alerts
- **Dev Updates Ping** — Technical progress posts
- **AMA Ping** — Upcoming AMAs and office hours
- **Governance Ping** — New governance proposals

---

**Ambassador application**
Eligibility: Member for 60+ days, Contributor role, no moderation history in the past 30 days, and a demonstrable external presence (X account, blog, YouTube, or active participation in other communities).

Apply here: [rillcoin.com/ambassador](URL_PLACEHOLDER)
Applications reviewed monthly by Core Team.

---

**Bug Hunter nominations**
Confirmed Medium+ severity bug reports earn this role automatically. No application needed — do quality work in #bug-reports and it follows.`),
		},
		"faq": {
			m(`## Frequently Asked Questions

---

**What is RillCoin?**
RillCoin is a proof-of-work cryptocurrency with a built-in concentration decay mechanism that redistributes dormant holdings to active miners. It is designed around a principle of circulation over concentration. The project is open-source and currently in testnet.

---

**What is concentration decay?**
When a wallet's balance exceeds defined thresholds, the portion above each threshold decays over time and flows into the decay pool, where it is redistributed to active miners. The larger your balance, the faster the excess decays. This is not a penalty — it is a circulation incentive. Wealth should flow like water, not pool in reservoirs.

---

**How does decay work technically?**
Decay is computed using a sigmoid curve applied to balances above defined concentration thresholds. Each threshold tier applies a progressively higher decay rate to the excess balance. Decay is applied per block and expressed as a fraction of the effective balance above the threshold. The decayed amount flows into the decay pool and is distributed to miners as part of the block reward.

---

**What are the decay thresholds?**
The specific threshold values and decay rates are defined in the protocol constants. See the technical documentation for the current mainnet parameters: [docs.rillcoin.com/protocol/decay](URL_PLACEHOLDER). Testnet parameters may differ from mainnet parameters during the testing phase.

---

**What is "effective balance"?**
Your effective balance is the portion of your wallet balance that is not subject to active decay — the amount below the first decay threshold. Holdings above the thresholds are subject to decay at rates defined by the protocol.`),
			m(`**How do I run a node?**
The RillCoin node software is available on GitHub: [github.com/rillcoin/rill](URL_PLACEHOLDER). Full node setup documentation is at [docs.rillcoin.com/node](URL_PLACEHOLDER). For questions and troubleshooting, use #node-operators.

Basic requirements: a machine with sufficient disk space for the chain, a stable internet connection, and the ability to open the required ports. Specific hardware recommendations are in the documentation.

---

**How do I get testnet coins?**
Use the faucet in #faucet. Run the command ~/faucet <your-testnet-address>~. You can request once every 24 hours per account. Your testnet address must be in the correct RillCoin testnet address format — the bot will reject addresses that do not match.

On successful delivery, you will receive the Testnet Participant role automatically.

---

**What is the roadmap?**
The current public roadmap is at [rillcoin.com/roadmap](URL_PLACEHOLDER). In brief: the project is in active testnet. Mainnet launch follows once the protocol is stable and audited. Governance tooling is planned post-mainnet.

---

**Is there a token sale or ICO?**
No. There is no token sale, no ICO, and no pre-mine. RillCoin is distributed exclusively through proof-of-work mining. Any offer to sell you RillCoin before it is mineable on mainnet is a scam.

---

**How do I contribute to the project?**
Read the contribution guide at [docs.rillcoin.com/contributing](URL_PLACEHOLDER) and the open issues on GitHub: [github.com/rillcoin/rill](URL_PLACEHOLDER). Discuss your approach in #development before opening a large pull request. All contributions must pass ~cargo clippy --workspace -- -D warnings~ and ~cargo test --workspace~.`),
			m(`**Where is the code?**
The full source is on GitHub: [github.com/rillcoin/rill](URL_PLACEHOLDER)

The codebase is a Cargo workspace with the following crate structure:
~rill-core~ → ~rill-decay~ → ~rill-consensus~ → ~rill-network~ → ~rill-wallet~ → ~rill-node~

---

**Where can I read the whitepaper?**
[docs.rillcoin.com/whitepaper](URL_PLACEHOLDER)

---

**How do I report a scam or impersonation?**
Use ~/report~ in any channel, or open a private ticket in #create-ticket. Do not engage with the scammer. No Core Team member or Moderator will ever DM you first — if someone does claiming to be from the team, it is a scam.

---

**I have a question that is not answered here. Where do I ask?**
- General questions → #general
- Technical protocol questions → #protocol
- Node setup and mining → #node-operators
- Testnet participation → #testnet-general
- Bug reports → #bug-reports (use the pinned template)
- Private support → #create-ticket

---

*This FAQ is updated quarterly. Last updated: February 2026.*`),
		},
		"general": {
			m(`## Welcome to #general

This is the main community discussion channel. On-topic conversation is preferred. Off-topic discussion is tolerated if it does not dominate — for everything unrelated to RillCoin, use #off-topic.

---

**Quick links:**
- New here? Start in #faq and #rules
- Technical questions → #protocol or #development
- Node and mining questions → #node-operators
- Testnet → #testnet-general
- Bot commands → #bot-commands

---

**Anti-scam reminder:**
No Core Team member or Moderator will ever DM you first. If someone DMs you claiming to be from the RillCoin team and offering support, airdrops, or giveaways, it is a scam. Use ~/report~ or open a ticket in #create-ticket.

Team members are identifiable by their colored names: **Founder** (orange) and **Core Team** (blue) are the only roles that represent the project officially.`),
		},
		"price-and-markets": {
			m(`## #price-and-markets — Ground Rules

This channel exists so market discussion stays out of #general. It is a designated space, not an endorsement of any particular price view.

---

**What is permitted:**
- Discussion of exchange listings, trading pairs, and market mechanics
- Questions about how the concentration decay mechanism interacts with market dynamics
- Links to price data from established sources
- Factual discussion of market events

**What is not permitted:**
- Price predictions stated as certainties
- Financial advice of any kind ("you should buy/sell")
- Coordinated buy or sell language — this server does not organize market activity
- Banned words: moon, lambo, pump, dump, gem, ape, degen, wagmi, ngmi, diamond hands, paper hands, shill

---

**Standard reminder:**
Nothing posted in this channel constitutes financial advice. RillCoin does not make price predictions or financial promises. Participation in any cryptocurrency involves risk. Make your own decisions.

---

Repeated violations of these ground rules will result in removal from this channel or the server under the standard escalation policy in #rules.`),
		},
		"protocol": {
			m(`## Concentration Decay — Protocol Explainer

This is the differentiating mechanism of RillCoin. Read this before asking decay questions.

---

**The core idea**
RillCoin implements progressive concentration decay. Wallet balances above defined thresholds decay over time. The decayed amount flows into the decay pool, which is distributed to miners as part of the block reward.

This is a circulation incentive built into the protocol itself — not a fee, not a tax, not a burn. It is a property of holding a large balance.

---

**How the decay rate is determined**
Decay uses a sigmoid curve applied to the balance above each threshold. The sigmoid curve means:
- Small amounts above a threshold decay slowly
- Large amounts above a threshold decay faster
- The decay rate increases progressively across tiers — higher thresholds apply higher rates

This prevents abrupt cliffs while still creating meaningful pressure against large concentration.

---

**What "effective balance" means**
Your effective balance is the portion of your holdings below the first decay threshold. It does not decay. Holdings above the thresholds are subject to decay at the rates defined by the protocol constants.

---

**The decay pool**
Decayed amounts accumulate in the decay pool per block. The pool balance is distributed to miners as part of the block reward for that block. Miners with more hash power receive a proportionally larger share.`),
			m(`**Arithmetic and precision**
All consensus math uses integer arithmetic with fixed-point precision at 10^8 (similar to Bitcoin's satoshi precision). No floating-point arithmetic is used in the protocol. This ensures deterministic results across all implementations.

---

**Proof of work**
RillCoin uses proof-of-work consensus. Block headers are hashed using SHA-256. The current testnet uses a simplified PoW implementation; the mainnet protocol uses RandomX to provide ASIC resistance.

---

**Fee structure**
A minimum fee is required for all transactions. The minimum fee is defined in the protocol constants. Fees are distributed to miners alongside the decay pool distribution.

---

**Where to find the formal specification**
Full protocol specification: [docs.rillcoin.com/protocol](URL_PLACEHOLDER)
Whitepaper (decay mechanism section): [docs.rillcoin.com/whitepaper#decay](URL_PLACEHOLDER)
Source of truth for constants: ~rill-core/src/constants.rs~ on [GitHub](URL_PLACEHOLDER)

---

**Discussion guidelines for this channel**
High-signal conversation is expected here. If you are asking a basic question, check #faq first. If you are making a technical claim, link your reasoning. Threads are encouraged for extended analysis.`),
		},
		"development": {
			m(`## Contributing to RillCoin

The codebase is open-source and contributions are welcome.

---

**Before you start:**
- Read the contribution guide: [docs.rillcoin.com/contributing](URL_PLACEHOLDER)
- Check open issues on GitHub: [github.com/rillcoin/rill/issues](URL_PLACEHOLDER)
- For significant changes, discuss your approach here or open a draft PR before writing production code

---

**Repository structure:**
The project is a Cargo workspace — 6 library crates and 3 binaries.
~rill-core~ → ~rill-decay~ → ~rill-consensus~ → ~rill-network~ → ~rill-wallet~ → ~rill-node~

---

**Code standards (non-negotiable):**
- Rust 2024 edition, stable toolchain, MSRV 1.85
- ~cargo clippy --workspace -- -D warnings~ must pass with zero warnings
- ~cargo test --workspace~ must pass
- All consensus math uses checked arithmetic (~checked_add~, ~checked_mul~)
- No floating-point in protocol logic — fixed-point u64 with 10^8 precision
- Public APIs require doc comments and proptest coverage

---

**Commit and branch conventions:**
- Branch: ~<crate>/<description>~ (e.g., ~rill-decay/fix-threshold-calculation~)
- Commit: ~<crate>: <description>~ (e.g., ~rill-core: implement Transaction struct~)

---

**Bug reports go to #bug-reports**, not here. Use the template pinned there.`),
		},
		"research": {
			m(`## #research — Posting Guidelines

This channel is for longer-form technical content: analysis, external papers, economic modeling of the decay mechanism, and formal arguments about protocol design.

---

**What belongs here:**
- Links to academic papers relevant to proof-of-work, concentration mechanisms, or monetary economics, with a summary of why they are relevant
- Original analysis of the decay mechanism (modeling decay rates, threshold sensitivity, miner incentives)
- Economic arguments for or against specific protocol parameters
- Comparative analysis of RillCoin's approach against other concentration-resistance mechanisms

**What does not belong here:**
- Short questions (use #protocol or #general)
- Bug reports (use #bug-reports with the template)
- Price speculation
- Content without substantive technical or economic content

---

**Format:**
This is a forum channel. Each post requires a title. Use threads for extended discussion. If you are sharing an external paper, include a brief summary of the relevant sections — do not post a link with no context.

---

**Tone:**
Rigorous and direct. Disagreement is welcome; keep it about the ideas, not the people.`),
		},
		"node-operators": {
			m(`## Running a RillCoin Node — Quick Start

Full documentation: [docs.rillcoin.com/node](URL_PLACEHOLDER)

---

**Prerequisites:**
- Operating system: Linux (Ubuntu 22.04+ recommended), macOS, or Windows (WSL2)
- Disk space: Minimum 20 GB free (testnet); mainnet requirements will be higher
- RAM: Minimum 2 GB
- Network: Stable connection; ability to open inbound TCP port (default: 30333)
- Rust toolchain: stable, MSRV 1.85+ (not required if using pre-built binaries)

---

**Installation (from source):**
~~~
git clone https://github.com/rillcoin/rill
cd rill
cargo build --release --bin rill-node
~~~

**Running the node:**
~~~
./target/release/rill-node --network testnet
~~~

For full flag reference:
~~~
./target/release/rill-node --help
~~~

---

**Connecting to testnet:**
The testnet bootstrap peers are listed in the documentation: [docs.rillcoin.com/testnet/peers](URL_PLACEHOLDER)

Your node will begin syncing from the genesis block. Initial sync time depends on your connection speed and the current chain height.`),
			m(`**Mining (testnet):**
Mining is supported on testnet. To enable mining, provide a wallet address to receive rewards:
~~~
./target/release/rill-node --network testnet --mine --wallet <your-testnet-address>
~~~

The miner competes on the current PoW target. On testnet, the RandomX implementation is active. ASIC mining is not advantageous due to the memory-hard algorithm.

---

**Common issues:**

*Node won't connect to peers*
- Verify that your firewall allows inbound connections on the node port
- Check that the bootstrap peer addresses in your config are current — see [docs.rillcoin.com/testnet/peers](URL_PLACEHOLDER)

*Sync is stalled*
- Check the ~#testnet-status~ channel for network health
- Restart the node with ~--resync~ flag if blocks are not advancing after 30 minutes

*Decay calculation looks wrong*
- Decay is applied per block. If you are checking balances mid-block, the displayed balance may not yet reflect the latest decay application. Wait for block confirmation.

---

**Reporting node issues:**
If you encounter a bug, use the template in #bug-reports. Include your node version (~rill-node --version~), OS, and the full error output.

For configuration questions, ask in this channel. For suspected bugs, use #bug-reports.`),
		},
		"testnet-general": {
			m(`## Testnet Participation

The RillCoin testnet is live and open to the public. Your participation matters — the more nodes, wallets, and transactions running on testnet, the more confidently the protocol can be validated before mainnet.

---

**How to get started:**

1. Get the node software: [github.com/rillcoin/rill](URL_PLACEHOLDER)
2. Follow the setup guide: [docs.rillcoin.com/testnet](URL_PLACEHOLDER)
3. Get testnet coins from the faucet in #faucet
4. Run transactions, test the decay mechanism, and report anything unexpected

---

**Roles you can earn:**
- **Testnet Participant** — Automatically assigned when you receive faucet coins
- **Bug Hunter** — Manually awarded for confirmed Medium+ severity bug reports

---

**Channels to use:**
- Setup questions → #node-operators
- Bug reports → #bug-reports (use the template)
- Wallet address sharing for testing → #testnet-wallets
- Testnet coins → #faucet
- Live network status → #testnet-status

---

**Important:** Testnet coins have no monetary value. Testnet parameters (thresholds, decay rates, block time) may differ from the final mainnet parameters. Do not use mainnet wallet addresses on testnet.

Full testnet documentation: [docs.rillcoin.com/testnet](URL_PLACEHOLDER)`),
		},
		"bug-reports": {
			m(`## Bug Report Template

Every bug report must use this format. Posts without the required fields will be closed without triage.

Each report creates a thread. The dev team triages all reports within 7 days.

---

**Copy and fill in the template below:**

~~~
**Title:** [One-sentence description of the issue]

**Node version:** [Output of ~rill-node --version~]
**OS:** [e.g., Ubuntu 22.04, macOS 14.3, Windows 11 WSL2]
**Network:** [testnet / mainnet]

**Steps to reproduce:**
1.
2.
3.

**Expected behavior:**
[What you expected to happen]

**Actual behavior:**
[What actually happened]

**Logs / error output:**
[Paste relevant log lines here, wrapped in code blocks]

**Severity (your assessment):**
[ ] Low — cosmetic or minor inconvenience
[ ] Medium — incorrect behavior, workaround exists
[ ] High — significant malfunction, no workaround
[ ] Critical — data loss, security issue, consensus failure
~~~

---

**After submitting:**
A Core Team member will reply in your thread with a triage status. Confirmed Medium+ bugs earn the **Bug Hunter** role. If your bug is linked to a GitHub issue, the issue number will be posted in your thread.

**Security vulnerabilities:** Do not post publicly. Email [security@rillcoin.com](URL_PLACEHOLDER) instead.`),
		},
		"faucet": {
			m(`## Testnet Faucet

The faucet distributes testnet RillCoin for development and testing.

---

**How to request:**
Run this command in this channel:
~~~
/faucet <your-testnet-address>
~~~

Replace ~<your-testnet-address>~ with your RillCoin testnet wallet address.

---

**Rate limits:**
- One request per Discord account per 24 hours
- One request per wallet address per 24 hours

Both limits apply independently. Creating multiple Discord accounts to bypass the rate limit will result in a ban.

---

**Address format:**
The bot validates address format before processing. Addresses that do not match the RillCoin testnet address format will be rejected. Do not use mainnet addresses here.

To generate a testnet wallet address, see the wallet documentation: [docs.rillcoin.com/wallet](URL_PLACEHOLDER)

---

**After your request:**
The bot will confirm receipt and post the expected transaction time. Once the transaction is confirmed on chain, you will automatically receive the **Testnet Participant** role.

If the faucet does not respond within 10 minutes, check #testnet-status for network health. If the network is healthy and the faucet is unresponsive, report it in #support-general.

---

**Testnet coins have no monetary value.**`),
		},
		"governance-general": {
			m(`## Governance — Current Status

RillCoin governance is currently in an advisory phase. There is no on-chain voting yet. This channel exists to build the culture and practice of community governance before the formal mechanisms are deployed.

---

**What governance means here, right now:**
- Community members propose and discuss changes to the protocol, parameters, and community direction
- The Core Team reads this channel and takes community input seriously
- No vote here is binding — the Core Team makes final decisions during this phase
- This will change as the project matures and formal governance tooling is deployed

---

**How to participate:**
- Post your thoughts on protocol direction, parameter choices, or process questions here
- To submit a formal proposal, use #proposals with the structured format
- Governance Ping: opt in via ~/role~ in #bot-commands to receive pings when new proposals open

---

**Access:**
This channel is open to **Contributor** role and above. To earn Contributor, see the requirements in #roles-and-verification.

---

**What comes next:**
On-chain voting is planned post-mainnet. When snapshot.org or on-chain governance launches, results and links will appear in #voting. This channel will transition from advisory to participatory at that point.

Questions about the governance roadmap → [docs.rillcoin.com/governance](URL_PLACEHOLDER)`),
		},
		"proposals": {
			m(`## Proposal Template and Guidelines

Use this format for every formal proposal. Posts that do not follow the structure will be asked to revise before discussion begins.

This is a forum channel. Each proposal is a separate post with a title.

---

**Proposal template:**

~~~
**RCP-[number]: [Short title]**

**Summary**
[2–4 sentences. What are you proposing and why?]

**Motivation**
[What problem does this solve? What is the current behavior and why is it insufficient?]

**Specification**
[Precise description of the proposed change. For protocol changes, include: affected constants or parameters, the proposed new values, and the mathematical or logical reasoning. For process changes, describe the new procedure step by step.]

**Drawbacks**
[What are the honest downsides or risks of this proposal? This section is required. Proposals that do not acknowledge tradeoffs are not credible.]

**Alternatives considered**
[What other approaches did you consider and why did you not propose them?]

**Open questions**
[What remains unresolved? What feedback are you specifically seeking?]
~~~

---

**Numbering:** Use the next sequential RCP (RillCoin Proposal) number. Check existing proposals to avoid duplicates.

**Discussion:** Use the thread on your proposal post. Keep top-level discussion in the thread, not in #governance-general.

**Status:** Core Team will add a status tag to proposals: Draft → Under Review → Accepted / Rejected / Deferred.`),
		},
		"support-general": {
			m(`## Getting Help

This channel is for public support questions. Use it for wallet setup, sync issues, decay calculation questions, and general troubleshooting.

---

**Before posting, check these resources:**
- FAQ → #faq
- Protocol documentation → [docs.rillcoin.com](URL_PLACEHOLDER)
- Node setup guide → [docs.rillcoin.com/node](URL_PLACEHOLDER)
- #node-operators for node-specific questions
- #bug-reports if you believe you have found a bug (use the template)

---

**When posting a support question, include:**
- What you are trying to do
- What you expected to happen
- What actually happened
- Your node or wallet version, if relevant
- Your operating system, if relevant
- Any error messages (paste the full text or a screenshot)

The more context you provide, the faster someone can help.

---

**For private support** (if your question involves wallet addresses, keys, or sensitive account information):
Use #create-ticket to open a private thread with the support team. Do not post private keys or seed phrases anywhere in this server — not in this channel, not in a ticket.

---

**Security reminder:**
No one from the Core Team will DM you first to offer support. If someone DMs you claiming to be support and asking for your seed phrase, wallet address, or any credentials — it is a scam. Report it using ~/report~.`),
		},
		"bot-commands": {
			m(`## Bot Commands

Run all bot commands here. Running commands in other channels may result in a reminder from moderators.

---

**Notification role management:**
~~~
/role add <role-name>
/role remove <role-name>
~~~
Available notification roles: Announcements Ping, Testnet Ping, Dev Updates Ping, AMA Ping, Governance Ping

---

**Information commands:**
~~~
!decay       — Explanation of concentration decay with documentation link
!whitepaper  — Link to the RillCoin whitepaper
!testnet     — Current testnet status link and faucet instructions
!roadmap     — Link to the public roadmap
!github      — Link to the GitHub repository
~~~

---

**Decay calculator (coming soon):**
~~~
/decay <balance>
~~~
Estimates the decay schedule for a given balance based on published protocol constants. Not live chain data — a model estimate.

---

**Faucet requests go to #faucet**, not here:
~~~
/faucet <testnet-address>
~~~

---

**Reporting:**
~~~
/report
~~~
Opens a report flow for rule violations, scam attempts, or impersonation. Reports go to the moderation team.`),
		},
		"crypto-news": {
			m(`## #crypto-news — Industry News Feed

This channel delivers curated crypto industry news from established sources. It is automated and read-only.

---

**Sources:**
- CoinDesk
- The Block
- Bitcoin Magazine
- Decrypt

**Filters:** Content is filtered to topics relevant to RillCoin: proof-of-work, monetary policy, protocol design, and Layer 1 developments. General altcoin news and token launch announcements are excluded.

**Bot:** MonitoRSS — an open-source RSS-to-Discord bot with 7+ years of uptime and 500M+ articles delivered. We use it instead of dedicated crypto news bots to maintain full control over sources and avoid spam or shilling from bot-curated feeds.

---

**This channel is read-only.** Members cannot post here. To discuss a news item, share the link in #general or #price-and-markets.`),
		},
		"price-ticker": {
			m(`## #price-ticker — Top 20 Crypto Prices

This channel provides auto-updating price data for BTC, ETH, and the top 20 cryptocurrencies by market cap. It is automated and read-only.

---

**Bot:** CoinGecko Bot — the official CoinGecko Discord bot. Free tier, supports 4000+ coins, formatted embeds, and scheduled price summaries.

**What is tracked:** Bitcoin, Ethereum, and the top 20 by market cap. Once RillCoin is listed on exchanges post-mainnet, RILL will be added to the tracked assets.

**Complement:** This channel provides raw price data. For market discussion, use #price-and-markets.

---

**This channel is read-only.** Members cannot post here. Nothing posted in this channel constitutes financial advice. RillCoin does not make price predictions or financial promises.`),
		},
		"regulatory-watch": {
			m(`## #regulatory-watch — Crypto Regulation and Legal News

This channel delivers low-volume regulatory and legal developments relevant to the cryptocurrency industry. It is automated and read-only.

---

**Sources:**
- SEC Litigation Releases (official RSS)
- CFTC News (official RSS)
- CoinDesk — Policy and Regulation
- The Block — Regulation

**Volume:** Expect 2-5 posts per week. This is intentionally low-noise.

**Bot:** MonitoRSS — the same bot that powers #crypto-news, configured with separate feeds for regulatory content.

---

**Why this channel exists:** RillCoin takes regulatory context seriously. This feed is useful for governance participants, protocol designers, and institutional observers who need to stay informed about the legal landscape affecting proof-of-work cryptocurrencies.

**This channel is read-only.** To discuss regulatory developments, use #governance-general or #general.`),
		},
		"whale-alerts": {
			m(`## #whale-alerts — Large Transaction Monitoring

This channel will display alerts when large cryptocurrency transactions occur on major chains. It is automated and read-only.

---

**Bot:** Whale Alert Bot — free tier, tracks large transactions on BTC, ETH, and major chains.

**Current status:** This channel is a stub during the pre-mainnet phase. Whale tracking for major chains will be activated when the community finds it useful. Post-mainnet, RillCoin-specific large movement alerts will be added via a custom bot integration.

**Why this channel exists:** Large transaction monitoring provides relevant market intelligence for a proof-of-work community. Tracking whale movements on BTC and ETH helps contextualize broader market dynamics.

---

**This channel is read-only.** To discuss large transactions or market movements, use #price-and-markets.`),
		},
	}
}
