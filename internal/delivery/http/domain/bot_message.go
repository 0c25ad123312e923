package domain

var (
	WEBHOOK_HANDLE_SUCCESS = "Events handled"
	WEBHOOK_HANDLE_FAILED  = "Some events failed"
	WEBHOOK_INVALID_BODY   = "Invalid webhook body"
)

// Texts sent to users
var (
	COMMAND_START_QUIZ    = "開始測驗"
	COMMAND_MY_COLLECTION = "我的字庫"
	COMMAND_SCORE         = "得分"

	REPLY_ECHO               = "請從選單進行操作 ⬇️"
	REPLY_QUIZ_ALT_TEXT      = "考試開始，不要作弊！"
	REPLY_MORE_ALT_TEXT      = "再來一題"
	REPLY_CORRECT            = "恭喜、答對了！！！\n"
	REPLY_WRONG              = "❌ 答錯了！\n"
	REPLY_AUDIO_INSTRUCTION  = "請點擊影片聽取音檔\n並輸入答案後送出"
	REPLY_COLLECTION_EMPTY   = "您的字庫裡尚無任何單字"
	REPLY_COLLECTION_FULL    = "你的字庫達上限，請刪減一些單字"
	REPLY_ALREADY_COLLECTED  = "字彙已在您的字庫中！"
	REPLY_COLLECTED          = "已加入您的字庫"
	REPLY_COLLECTION_MISSING = "找不到您的字庫資料"
	REPLY_DELETED            = "刪除成功！"
	REPLY_DELETED_ALT_TEXT   = "刪除成功"
	REPLY_COLLECTION_TITLE   = "我的字庫"
	REPLY_WORD_DETAIL_TITLE  = "單字詳解"
	REPLY_SCORE_ALT_TEXT     = "你的分數"
	REPLY_NEW_USER           = "找不到用戶，開始挑戰吧"
	REPLY_WORD_MISSING       = "找不到這個單字"

	LABEL_ENGLISH         = "英文出題"
	LABEL_CHINESE         = "中文出題"
	LABEL_AUDIO           = "發音出題"
	LABEL_ENGLISH_ADVANCE = "英文出題 (高階)"
	LABEL_CHINESE_ADVANCE = "中文出題 (高階)"
	LABEL_MORE_QUESTION   = "再來一題"
	LABEL_PRONOUNCE       = "聽發音"
	LABEL_ADD_COLLECTION  = "加入字庫"
	LABEL_CHECK           = "查看"
	LABEL_DELETE          = "從字庫刪除"
	LABEL_VIEW_COLLECTION = "查看字庫"
	LABEL_VIEW_MINE       = "查看我的字庫"
	LABEL_CONTINUE        = "繼續測驗"
	LABEL_TRANSLATION     = "翻譯："
)
