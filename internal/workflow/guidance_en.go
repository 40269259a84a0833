package workflow

// English guidance, keyed by the canonical Japanese task name. Entries
// mirror guidanceJA; prerequisites live only on the Japanese table.
var guidanceEN = map[string]Guidance{
	"目的/ゴールの明確化": {
		Description: "Document the purpose and goals of creating the PR materials. Aim for a state where all stakeholders share understanding of \"why this material is needed.\"",
		Deliverable: "Purpose & Goal Statement (about 1 page)",
		Tips:        []string{"Include \"who,\" \"what,\" and \"desired action\"", "Specify numerical targets if applicable (inquiries, awareness, etc.)", "Get approval from supervisors early"},
		Checkpoints: []string{"Can the purpose be explained in one sentence?", "Is the target audience reachable?", "Is it achievable within budget and timeline?"},
	},
	"ターゲット/ペルソナ設定": {
		Description: "Define the target reader's attributes, challenges, and needs as a concrete persona.",
		Deliverable: "Persona Sheet (1-3 personas)",
		Tips:        []string{"Use real acquaintances as models for specificity", "Always consider \"how would this person feel reading this?\"", "Prioritize if multiple personas exist"},
		Checkpoints: []string{"Are age, occupation, and position clear?", "Are their challenges identified?", "Do you know how they gather information?"},
	},
	"競合/類似物調査": {
		Description: "Collect and analyze competitor or similar materials to find differentiation points.",
		Deliverable: "Competitor Research Report (with comparison table)",
		Tips:        []string{"Collect 3-5 similar materials", "Note both strengths and areas for improvement", "Check design, message, and structure"},
		Checkpoints: []string{"Have major competitors been covered?", "Are differentiation points clear?"},
	},
	"コアメッセージ決定": {
		Description: "Determine the core message that runs through the entire PR material.",
		Deliverable: "Core Message Statement (1-2 sentences)",
		Tips:        []string{"Summarize what readers should remember most in one sentence", "Include benefits for the reader", "Choose expressions that differentiate from competitors"},
		Checkpoints: []string{"Is it attractive from the reader's perspective?", "Is it concise and memorable?", "Does it indicate the overall direction?"},
	},
	"構成案/台割作成": {
		Description: "Determine page structure and the role of each page.",
		Deliverable: "Layout Plan (page allocation table)",
		Tips:        []string{"Arrange according to reader interest flow", "Place important information early", "Think in spreads"},
		Checkpoints: []string{"Is there neither too much nor too little information?", "Is the flow easy to follow?", "Is the page count appropriate?"},
	},
	"スケジュール/予算確定": {
		Description: "Finalize the schedule from production to delivery and the budget.",
		Deliverable: "Schedule, Budget Document",
		Tips:        []string{"Allow sufficient time for proofreading and revisions", "Get quotes for outsourcing costs", "Confirm print quantity and unit price"},
		Checkpoints: []string{"Are persons in charge assigned for each phase?", "Is there buffer in deadlines?", "Is it within budget?"},
	},
	"企画承認": {
		Description: "Obtain approval from stakeholders on the plan.",
		Deliverable: "Approved Planning Document",
		Tips:        []string{"Consult with decision-makers beforehand", "Prepare countermeasures for concerns", "Record approval history"},
		Checkpoints: []string{"Have all necessary approvers signed off?", "Are revision instructions clearly recorded?"},
	},
	"取材対象者リスト作成": {
		Description: "List people who need to be interviewed and prioritize them.",
		Deliverable: "Interviewee List (with contact info and roles)",
		Tips:        []string{"Identify key persons", "Prepare alternatives", "Organize interview purposes and questions"},
		Checkpoints: []string{"Are all necessary interviewees covered?", "Is contact information confirmed?"},
	},
	"取材質問設計": {
		Description: "Design interview questions in advance.",
		Deliverable: "Question List",
		Tips:        []string{"Focus on open-ended questions", "Use \"why\" and \"how\" frequently", "Prepare follow-up questions for expected answers"},
		Checkpoints: []string{"Can the questions extract information needed for the PR material?", "Will it fit within the time?"},
	},
	"取材アポイント調整": {
		Description: "Coordinate dates and locations with interviewees.",
		Deliverable: "Interview Schedule",
		Tips:        []string{"Offer multiple date options", "Clearly communicate duration", "Explain purpose and usage"},
		Checkpoints: []string{"Are all schedules confirmed?", "Are venue and equipment arranged?"},
	},
	"取材実施/記録": {
		Description: "Conduct interviews and record the content.",
		Deliverable: "Interview Records (audio, notes)",
		Tips:        []string{"Always get recording permission", "Note facial expressions and atmosphere too", "Confirm photo permission"},
		Checkpoints: []string{"Was necessary information obtained?", "Are records accurate?"},
	},
	"文字起こし/記録整理": {
		Description: "Transcribe and organize interview content.",
		Deliverable: "Interview Transcript Document",
		Tips:        []string{"Mark important statements", "Pick out usable quotes", "Clarify unclear points early"},
		Checkpoints: []string{"Have usable quotes been extracted?", "Have items needing fact-checking been identified?"},
	},
	"写真/素材撮影・収集": {
		Description: "Shoot or collect photos and materials for the PR piece.",
		Deliverable: "Photo Data, Material Files",
		Tips:        []string{"Shoot from multiple angles", "Save in high resolution", "Confirm usage permissions"},
		Checkpoints: []string{"Are all needed shots ready?", "Is quality sufficient for printing?", "Are portrait/copyright rights confirmed?"},
	},
	"素材の不足確認/追加入手": {
		Description: "Identify missing materials and obtain them additionally.",
		Deliverable: "Additional Materials",
		Tips:        []string{"Check against the layout plan", "Consider alternatives", "Start early for time-consuming items"},
		Checkpoints: []string{"Are all materials complete?", "Is quality sufficient?"},
	},
	"初稿執筆": {
		Description: "Write the first draft based on interview content and structure.",
		Deliverable: "First Draft",
		Tips:        []string{"Prioritize completing the draft first", "Be conscious of the reader's perspective", "Keep referring to the core message"},
		Checkpoints: []string{"Does it convey the core message?", "Is the word count appropriate?", "Are facts accurate?"},
	},
	"キャッチ/見出し案作成": {
		Description: "Create multiple catchphrase and headline options.",
		Deliverable: "Catchphrases, Headlines (3-5 options each)",
		Tips:        []string{"Use expressions that grab reader interest", "Include numbers and specifics", "Keep short and impactful"},
		Checkpoints: []string{"Are they eye-catching?", "Do they match the content?", "Do they differentiate from competitors?"},
	},
	"内部レビュー（文章）": {
		Description: "Circulate the draft to stakeholders and collect feedback.",
		Deliverable: "Review Comments List",
		Tips:        []string{"Specify review criteria when requesting", "Set deadlines", "Conflicting opinions need coordination"},
		Checkpoints: []string{"Has feedback been received from all necessary stakeholders?", "Is the revision policy clear?"},
	},
	"修正/第2稿作成": {
		Description: "Revise the draft based on reviews.",
		Deliverable: "Second Draft",
		Tips:        []string{"List all feedback items before starting", "Highlight revised sections", "Be careful not to create new problems"},
		Checkpoints: []string{"Have all feedback items been addressed?", "Has the revision not disrupted context?"},
	},
	"対象者/関係者確認": {
		Description: "Have interviewees and stakeholders verify the draft content.",
		Deliverable: "Verified Draft",
		Tips:        []string{"Specify confirmation deadline", "Communicate scope of possible revisions", "Record confirmation history"},
		Checkpoints: []string{"Are statements accurate?", "Is the content suitable for publication?"},
	},
	"原稿確定": {
		Description: "Finalize the final version of the manuscript.",
		Deliverable: "Finalized Manuscript",
		Tips:        []string{"Keep revisions minimal after this", "Record the finalization date", "Maintain thorough version control"},
		Checkpoints: []string{"Have all necessary approvals been obtained?", "Has final typo check been done?"},
	},
	"デザインコンセプト決定": {
		Description: "Determine the overall design direction of the PR material.",
		Deliverable: "Design Concept Sheet, Mood Board",
		Tips:        []string{"Consider target preferences", "Be conscious of differentiation from competitors", "Collect reference images"},
		Checkpoints: []string{"Does it align with the core message?", "Is the design achievable?"},
	},
	"ラフレイアウト作成": {
		Description: "Create rough layouts for each page.",
		Deliverable: "Rough Layout",
		Tips:        []string{"Hand-drawn is acceptable", "Be conscious of element priority", "Leave sufficient white space"},
		Checkpoints: []string{"Is information hierarchy clear?", "Is the visual flow natural?"},
	},
	"写真/図版選定・配置": {
		Description: "Select photos and illustrations and determine placement.",
		Deliverable: "Photo/Illustration Placement Plan",
		Tips:        []string{"Choose high-quality ones", "Be conscious of consistency", "Confirm if captions are needed"},
		Checkpoints: []string{"Are all materials ready?", "Is placement appropriate?"},
	},
	"初稿組版作成": {
		Description: "Create actual typesetting using design software.",
		Deliverable: "First Typeset Draft (PDF, etc.)",
		Tips:        []string{"Set appropriate font size and line spacing", "Use print-ready color settings", "Export PDF for proofreading"},
		Checkpoints: []string{"Is text readable?", "Is image resolution sufficient?", "Is there any overflow?"},
	},
	"内部レビュー（デザイン）": {
		Description: "Have stakeholders review the design.",
		Deliverable: "Design Review Comments",
		Tips:        []string{"Consider that screen and print look different", "Have multiple people check", "Prioritize feedback"},
		Checkpoints: []string{"Does it follow the design concept?", "Is readability ensured?"},
	},
	"デザイン修正": {
		Description: "Revise design based on review.",
		Deliverable: "Revised Design",
		Tips:        []string{"Keep revision history", "Re-confirm for major changes", "Be thorough with details"},
		Checkpoints: []string{"Have all feedback items been addressed?", "Have no new problems arisen?"},
	},
	"デザイン確定": {
		Description: "Finalize the final design version.",
		Deliverable: "Finalized Design",
		Tips:        []string{"Avoid revisions after finalization", "Confirm print data format", "Take backups"},
		Checkpoints: []string{"Have necessary approvals been obtained?", "Does it meet print specifications?"},
	},
	"初校チェック": {
		Description: "Proofread the first typeset proof.",
		Deliverable: "First Proof with Corrections",
		Tips:        []string{"Focus on typos", "Re-verify facts", "Have multiple people check"},
		Checkpoints: []string{"Are there no typos?", "Are numbers and proper nouns accurate?", "Is there no layout collapse?"},
	},
	"初校赤字反映": {
		Description: "Apply first proof corrections.",
		Deliverable: "Revised Typeset",
		Tips:        []string{"Verify each correction as you apply", "Be careful not to miss any", "Compare before and after"},
		Checkpoints: []string{"Have all corrections been applied?", "Have no new mistakes been introduced?"},
	},
	"再校チェック": {
		Description: "Check the revised second proof.",
		Deliverable: "Second Proof with Corrections",
		Tips:        []string{"Focus on checking first proof corrections", "Also check overall consistency", "Read through from reader's perspective"},
		Checkpoints: []string{"Were first proof corrections properly applied?", "Are there no new issues?"},
	},
	"再校赤字反映": {
		Description: "Apply second proof corrections.",
		Deliverable: "Revised Typeset",
		Tips:        []string{"Apply carefully", "Proceed to third proof if needed"},
		Checkpoints: []string{"Have all corrections been applied?", "Are there no side effects from revisions?"},
	},
	"三校チェック": {
		Description: "Check third proof as final verification.",
		Deliverable: "Third Proof with Corrections",
		Tips:        []string{"Approach as final check", "Verify details", "Judge if ready for printing"},
		Checkpoints: []string{"Is completion level sufficient?", "Is anything overlooked?"},
	},
	"三校赤字反映": {
		Description: "Apply third proof corrections.",
		Deliverable: "Final Typeset",
		Tips:        []string{"Keep revisions minimal", "Re-verify after revisions"},
		Checkpoints: []string{"Is it ready for final approval?"},
	},
	"色校正出し/確認": {
		Description: "Check color proof output from the printing press.",
		Deliverable: "Color Proof",
		Tips:        []string{"Check under natural light", "Compare with screen", "Pay special attention to important photos"},
		Checkpoints: []string{"Are colors as intended?", "Is print quality acceptable?"},
	},
	"色校正戻し/確定": {
		Description: "Return color proof feedback to printer and finalize.",
		Deliverable: "Color Proof Return Instructions",
		Tips:        []string{"Give specific revision instructions", "Specify tolerance range", "Approach as final confirmation"},
		Checkpoints: []string{"Is it ready to proceed to printing?", "Are revision instructions clear?"},
	},
	"入稿データ作成": {
		Description: "Prepare submission data for the printer.",
		Deliverable: "Submission Data Package",
		Tips:        []string{"Confirm printer specifications", "Embed fonts", "Watch for broken image links"},
		Checkpoints: []string{"Is data error-free?", "Is it created according to specifications?"},
	},
	"印刷発注/公開準備": {
		Description: "Place print order or prepare for web publication.",
		Deliverable: "Order Form, Publication Readiness Report",
		Tips:        []string{"Re-confirm deadline and quantity", "Arrange delivery location", "Inform stakeholders of publication date"},
		Checkpoints: []string{"Is order content accurate?", "Is receiving arrangement ready?"},
	},
	"校了/最終承認": {
		Description: "Give final approval and sign off on the deliverable.",
		Deliverable: "Final Approval Document",
		Tips:        []string{"Final check by responsible person", "No revisions in principle after approval", "Record approval date"},
		Checkpoints: []string{"Have all approvers given consent?", "Is it suitable for publication?"},
	},
	"納品/公開": {
		Description: "Deliver or publish the completed PR material.",
		Deliverable: "Deliverables, Publication Completion Report",
		Tips:        []string{"Inspect deliverables", "Verify post-publication functionality", "Report to stakeholders"},
		Checkpoints: []string{"Are deliverables problem-free?", "Was publication done correctly?"},
	},
	"配布/告知": {
		Description: "Distribute PR materials and notify stakeholders.",
		Deliverable: "Distribution Completion Report",
		Tips:        []string{"Create distribution list", "Confirm distribution method", "Consider SNS announcements"},
		Checkpoints: []string{"Was distribution completed as planned?", "Is feedback being recorded?"},
	},
	"振り返り/ナレッジ整理": {
		Description: "Reflect on the entire project and organize learnings.",
		Deliverable: "Retrospective Report",
		Tips:        []string{"Include both positives and areas for improvement", "Record in a form useful for next time", "Share with team"},
		Checkpoints: []string{"Are reflection points clear?", "Are next actions decided?"},
	},
}
